// Package analysis orquesta el pipeline de noticias: descarga, clasificación
// de sentimiento, informe cualitativo del LLM, persistencia del batch y
// refresco del risk_factor del inventario.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	"github.com/jhoicas/SupplyRisk-api/internal/application/risk"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

// RefreshSummary resumen de una corrida del pipeline.
type RefreshSummary struct {
	Articles        int
	AvgSentiment    float64
	ProductsUpdated int
}

// UseCase coordina proveedor de noticias, scorer léxico, narrador LLM,
// almacén del batch y refresco de riesgo.
type UseCase struct {
	news      ports.NewsProvider
	scorer    ports.SentimentScorer
	narrator  ports.RiskNarrator
	store     ports.AnalysisStore
	refresh   *risk.RefreshUseCase
	inventory repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	news ports.NewsProvider,
	scorer ports.SentimentScorer,
	narrator ports.RiskNarrator,
	store ports.AnalysisStore,
	refresh *risk.RefreshUseCase,
	inventory repository.InventoryRepository,
) *UseCase {
	return &UseCase{
		news:      news,
		scorer:    scorer,
		narrator:  narrator,
		store:     store,
		refresh:   refresh,
		inventory: inventory,
	}
}

// RefreshNews ejecuta el pipeline completo: descarga artículos recientes,
// clasifica cada uno, pide el informe al LLM, persiste el batch y aplica el
// refresco de riesgo con el sentimiento promedio resultante.
//
// Un fallo del LLM sobre un artículo individual no aborta el batch: el
// artículo queda sin informe cualitativo pero conserva su sentimiento, que
// es la señal que alimenta los pesos.
func (uc *UseCase) RefreshNews(ctx context.Context) (RefreshSummary, error) {
	articles, err := uc.news.FetchRecent(ctx)
	if err != nil {
		return RefreshSummary{}, fmt.Errorf("refresh news: descargar artículos: %w", err)
	}

	batch := make([]entity.ArticleAnalysis, 0, len(articles))
	for _, a := range articles {
		batch = append(batch, uc.analyzeOne(ctx, a))
	}

	if err := uc.store.Save(batch); err != nil {
		return RefreshSummary{}, fmt.Errorf("refresh news: persistir batch: %w", err)
	}

	avg, updated, err := uc.refresh.Refresh(ctx, batch)
	if err != nil {
		return RefreshSummary{}, err
	}
	return RefreshSummary{Articles: len(batch), AvgSentiment: avg, ProductsUpdated: updated}, nil
}

// analyzeOne clasifica el sentimiento del artículo y le adjunta el informe
// del LLM si está disponible.
func (uc *UseCase) analyzeOne(ctx context.Context, a entity.Article) entity.ArticleAnalysis {
	text := a.Title
	if a.Body != "" {
		text = a.Title + ". " + a.Body
	}

	compound := uc.scorer.Polarity(text)
	label := "POSITIVE"
	if compound < 0 {
		label = "NEGATIVE"
	}

	out := entity.ArticleAnalysis{
		Title:    a.Title,
		Source:   a.Source,
		DateTime: a.DateTime,
		Sentiment: &entity.SentimentResult{
			Label: label,
			Score: (compound + 1) / 2,
		},
	}

	if report, err := uc.narrator.AnalyzeRisk(ctx, text); err == nil {
		out.RiskAnalysis = report
	}
	return out
}

// Latest devuelve el último batch analizado. Un origen ausente o corrupto
// se entrega como lista vacía: la vista de noticias no debe fallar por ello.
func (uc *UseCase) Latest() []entity.ArticleAnalysis {
	batch, err := uc.store.Load()
	if err != nil {
		return []entity.ArticleAnalysis{}
	}
	return batch
}

// Chat responde una pregunta del operador con el LLM, anteponiendo como
// contexto el estado actual del inventario y los titulares más recientes.
func (uc *UseCase) Chat(ctx context.Context, question string) (string, error) {
	var b strings.Builder
	b.WriteString("You are a supply chain risk assistant for a lithium battery distributor.\n")
	b.WriteString("Current inventory:\n")

	products, err := uc.inventory.List(ctx)
	if err != nil {
		return "", fmt.Errorf("chat: listar inventario: %w", err)
	}
	for _, p := range products {
		fmt.Fprintf(&b, "- %s %s: stock %d (min %d, max %d), risk factor %s\n",
			p.ProductID, p.Name, p.TotalStock, p.MinThreshold, p.MaxCapacity, p.RiskFactor.StringFixed(1))
	}

	if recent := uc.Latest(); len(recent) > 0 {
		b.WriteString("Recent supply chain news:\n")
		for i, art := range recent {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "- %s (%s)\n", art.Title, art.Source)
		}
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(question)

	answer, err := uc.narrator.AnalyzeRisk(ctx, b.String())
	if err != nil {
		return "", fmt.Errorf("chat: consultar LLM: %w", err)
	}
	return answer, nil
}
