package risk

import (
	"context"
	"fmt"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
	domrisk "github.com/jhoicas/SupplyRisk-api/internal/domain/risk"
	"github.com/shopspring/decimal"
)

// RefreshUseCase recalcula y persiste el risk_factor (0–10) de cada producto
// a partir del último batch de noticias analizadas: blend 70% riesgo de stock
// y 30% riesgo de sentimiento.
//
// Además recalibra los pesos del motor con el mismo batch, de modo que el
// cargador de configuración inicial y el refresco en vivo comparten una sola
// ruta de promediado de sentimiento.
type RefreshUseCase struct {
	inventory repository.InventoryRepository
	store     ports.AnalysisStore
	engine    *Engine
}

// NewRefreshUseCase construye el caso de uso.
func NewRefreshUseCase(inventory repository.InventoryRepository, store ports.AnalysisStore, engine *Engine) *RefreshUseCase {
	return &RefreshUseCase{inventory: inventory, store: store, engine: engine}
}

// Refresh aplica el batch dado sobre todos los productos del inventario.
// Devuelve el sentimiento promedio usado y cuántos productos se actualizaron.
func (uc *RefreshUseCase) Refresh(ctx context.Context, batch []entity.ArticleAnalysis) (float64, int, error) {
	avg := domrisk.MeanSentiment(ScoresFromBatch(batch))
	uc.engine.SetWeights(domrisk.WeightsFromMean(avg))

	products, err := uc.inventory.List(ctx)
	if err != nil {
		return avg, 0, fmt.Errorf("refresh risk: listar inventario: %w", err)
	}

	updated := 0
	for _, p := range products {
		stockRisk := domrisk.StockRiskLevel(p.TotalStock, p.MinThreshold, p.MaxCapacity)
		final := domrisk.FinalRiskFactor(stockRisk, avg)
		if err := uc.inventory.UpdateRiskFactor(ctx, p.ProductID, decimal.NewFromFloat(final)); err != nil {
			return avg, updated, fmt.Errorf("refresh risk: producto %s: %w", p.ProductID, err)
		}
		updated++
	}
	return avg, updated, nil
}

// RefreshFromStore relee el batch persistido y aplica Refresh. Un batch
// ausente o corrupto no es error: se promedia como 0.5 (lista vacía).
func (uc *RefreshUseCase) RefreshFromStore(ctx context.Context) (float64, int, error) {
	batch, err := uc.store.Load()
	if err != nil {
		batch = nil
	}
	return uc.Refresh(ctx, batch)
}
