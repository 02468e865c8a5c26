package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/SupplyRisk-api/internal/application/alerts"
	"github.com/jhoicas/SupplyRisk-api/internal/application/analysis"
	"github.com/jhoicas/SupplyRisk-api/internal/application/analytics"
	"github.com/jhoicas/SupplyRisk-api/internal/application/ledger"
	"github.com/jhoicas/SupplyRisk-api/internal/application/report"
	apprisk "github.com/jhoicas/SupplyRisk-api/internal/application/risk"
	infraai "github.com/jhoicas/SupplyRisk-api/internal/infrastructure/ai"
	"github.com/jhoicas/SupplyRisk-api/internal/infrastructure/analysisfile"
	infranews "github.com/jhoicas/SupplyRisk-api/internal/infrastructure/news"
	"github.com/jhoicas/SupplyRisk-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/SupplyRisk-api/internal/infrastructure/pdf"
	"github.com/jhoicas/SupplyRisk-api/internal/infrastructure/postgres"
	"github.com/jhoicas/SupplyRisk-api/internal/infrastructure/sentiment"
	httpRouter "github.com/jhoicas/SupplyRisk-api/internal/interfaces/http"
	"github.com/jhoicas/SupplyRisk-api/pkg/config"
	"github.com/jhoicas/SupplyRisk-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Esquema del ledger + catálogo canónico de baterías. El seed reinicia los
	// productos canónicos a su estado inicial en cada arranque.
	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	inventoryRepo := postgres.NewInventoryRepository(pool)
	damageRepo := postgres.NewDamageLogRepository(pool)
	delayRepo := postgres.NewTransportDelayRepository(pool)
	salesRepo := postgres.NewSalesLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewUseCase(txRunner, inventoryRepo, damageRepo, delayRepo, salesRepo)

	// Motor de riesgo: los pesos iniciales salen del batch de análisis
	// persistido; si no existe o está corrupto se usa el set de respaldo.
	scorer := sentiment.NewVaderScorer()
	analysisStore := analysisfile.NewStore(cfg.Risk.AnalysisPath)
	weights := apprisk.LoadWeights(analysisStore)
	engine := apprisk.NewEngine(scorer, weights)
	refreshUC := apprisk.NewRefreshUseCase(inventoryRepo, analysisStore, engine)
	log.Info().
		Float64("news_sentiment", weights.NewsSentiment).
		Float64("textual_risk", weights.TextualRisk).
		Msg("pesos del motor de riesgo cargados")

	groqSvc := infraai.NewGroqService(cfg.AI.GroqAPIKey, cfg.AI.GroqModel, cfg.AI.BaseURL)
	newsClient := infranews.NewEventRegistryClient(cfg.News)
	analysisUC := analysis.NewUseCase(newsClient, scorer, groqSvc, analysisStore, refreshUC, inventoryRepo)

	notifier := notify.NewLogNotifier(log.Component("alerts"))
	evaluator := alerts.NewEvaluator(inventoryRepo, notifier)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewUseCase(inventoryRepo, evaluator, analysisStore, pdfGenerator)

	dashboardUC := analytics.NewDashboardUseCase(inventoryRepo, damageRepo, delayRepo, salesRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SupplyRisk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:    ledgerUC,
		RiskEngine:  engine,
		AnalysisUC:  analysisUC,
		Alerts:      evaluator,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
