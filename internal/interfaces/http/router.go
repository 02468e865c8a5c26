package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SupplyRisk-api/internal/application/alerts"
	"github.com/jhoicas/SupplyRisk-api/internal/application/analysis"
	"github.com/jhoicas/SupplyRisk-api/internal/application/analytics"
	"github.com/jhoicas/SupplyRisk-api/internal/application/ledger"
	"github.com/jhoicas/SupplyRisk-api/internal/application/report"
	"github.com/jhoicas/SupplyRisk-api/internal/application/risk"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC    *ledger.UseCase
	RiskEngine  *risk.Engine
	AnalysisUC  *analysis.UseCase
	Alerts      *alerts.Evaluator
	ReportUC    *report.UseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ledger: inventario, daños, retrasos y ventas
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	api.Get("/inventory", ledgerHandler.ListInventory)
	api.Post("/inventory", ledgerHandler.UpdateInventory)
	api.Get("/damage-log", ledgerHandler.ListDamageLog)
	api.Post("/damage-log", ledgerHandler.LogDamage)
	api.Get("/transport-delays", ledgerHandler.ListTransportDelays)
	api.Post("/transport-delays", ledgerHandler.LogTransportDelay)
	api.Get("/sales-log", ledgerHandler.ListSalesLog)
	api.Post("/sales-log", ledgerHandler.LogSale)

	// Motor de riesgo
	riskGroup := api.Group("/risk")
	riskHandler := NewRiskHandler(deps.RiskEngine)
	riskGroup.Post("/predict", riskHandler.Predict)
	riskGroup.Get("/weights", riskHandler.Weights)

	// Noticias y chat
	newsHandler := NewNewsHandler(deps.AnalysisUC)
	api.Post("/news/refresh", newsHandler.Refresh)
	api.Get("/news", newsHandler.Latest)
	api.Post("/chat", newsHandler.Chat)

	// Alertas
	alertsHandler := NewAlertsHandler(deps.Alerts)
	api.Get("/alerts", alertsHandler.List)

	// Informes
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/risk", reportHandler.RiskReport)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)
}
