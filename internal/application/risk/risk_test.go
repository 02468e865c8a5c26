package risk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apprisk "github.com/jhoicas/SupplyRisk-api/internal/application/risk"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	domrisk "github.com/jhoicas/SupplyRisk-api/internal/domain/risk"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fixedScorer devuelve siempre la misma polaridad (controla la señal de
// sentimiento en los tests del motor).
type fixedScorer struct{ polarity float64 }

func (s fixedScorer) Polarity(string) float64 { return s.polarity }

// fakeStore implementa ports.AnalysisStore en memoria.
type fakeStore struct {
	batch []entity.ArticleAnalysis
	err   error
}

func (s *fakeStore) Load() ([]entity.ArticleAnalysis, error) { return s.batch, s.err }
func (s *fakeStore) Save(b []entity.ArticleAnalysis) error   { s.batch = b; return nil }

// fakeInventory implementa repository.InventoryRepository en memoria
// (solo lo que el refresco necesita).
type fakeInventory struct {
	products []*entity.Product
	factors  map[string]decimal.Decimal
}

func (f *fakeInventory) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ProductID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeInventory) List(context.Context) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeInventory) AddStock(context.Context, string, int) error { return nil }

func (f *fakeInventory) DeductStock(context.Context, string, int) (bool, error) {
	return true, nil
}

func (f *fakeInventory) UpdateRiskFactor(_ context.Context, id string, factor decimal.Decimal) error {
	if f.factors == nil {
		f.factors = map[string]decimal.Decimal{}
	}
	f.factors[id] = factor
	return nil
}

func batchWithScores(scores ...float64) []entity.ArticleAnalysis {
	batch := make([]entity.ArticleAnalysis, 0, len(scores))
	for _, s := range scores {
		batch = append(batch, entity.ArticleAnalysis{
			Title:     "articulo",
			Sentiment: &entity.SentimentResult{Label: "POSITIVE", Score: s},
		})
	}
	return batch
}

// ──────────────────────────────────────────────────────────────────────────────
// LoadWeights: las dos rutas de respaldo son distintas y deben preservarse.
// ──────────────────────────────────────────────────────────────────────────────

func TestLoadWeights_BatchConScores(t *testing.T) {
	store := &fakeStore{batch: batchWithScores(0.2, 0.8)}

	w := apprisk.LoadWeights(store)

	assert.Equal(t, 0.3, w.InventoryLevel)
	assert.Equal(t, 0.2, w.LeadTime)
	assert.InDelta(t, 0.5, w.NewsSentiment, 1e-12)
	assert.InDelta(t, 0.5, w.TextualRisk, 1e-12)
}

func TestLoadWeights_OrigenIlegible(t *testing.T) {
	store := &fakeStore{err: errors.New("no existe")}

	w := apprisk.LoadWeights(store)

	assert.Equal(t, domrisk.DefaultWeights(), w,
		"origen ilegible debe caer al set completo por defecto")
}

func TestLoadWeights_ListaVacia(t *testing.T) {
	store := &fakeStore{batch: []entity.ArticleAnalysis{}}

	w := apprisk.LoadWeights(store)

	// Lista vacía NO es lo mismo que archivo ausente: el promedio cae a 0.5.
	assert.Equal(t, 0.3, w.InventoryLevel)
	assert.Equal(t, 0.2, w.LeadTime)
	assert.Equal(t, 0.5, w.NewsSentiment)
	assert.Equal(t, 0.5, w.TextualRisk)
}

func TestLoadWeights_ArticulosSinSentimiento(t *testing.T) {
	store := &fakeStore{batch: []entity.ArticleAnalysis{
		{Title: "sin analisis"},
		{Title: "con analisis", Sentiment: &entity.SentimentResult{Score: 0.9}},
	}}

	w := apprisk.LoadWeights(store)

	assert.InDelta(t, 0.9, w.NewsSentiment, 1e-12,
		"los artículos sin sentiment_analysis se ignoran en el promedio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Engine
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_PredictRisk_ScoreConocido(t *testing.T) {
	// Polaridad fija 0 → sentimiento normalizado 0.5.
	engine := apprisk.NewEngine(fixedScorer{polarity: 0}, domrisk.DefaultWeights())

	// inv=2500/5000=0.5, lead=15/30=0.5, sent=0.5, textual=5/10=0.5
	// score = 0.5*0.3 + 0.5*0.2 + 0.5*0.3 + 0.5*0.2 = 0.5 → Medium
	category, score := engine.PredictRisk(2500, 15, "mercado estable", 5)

	assert.InDelta(t, 0.5, score, 1e-12)
	assert.Equal(t, domrisk.CategoryMedium, category)
}

func TestEngine_PredictRisk_EscenarioCritico(t *testing.T) {
	// Polaridad -1 (muy negativa), sin inventario, lead time máximo y riesgo
	// textual máximo → score = suma de todos los pesos.
	engine := apprisk.NewEngine(fixedScorer{polarity: -1}, domrisk.DefaultWeights())

	category, score := engine.PredictRisk(0, 30, "colapso total del suministro", 10)

	assert.InDelta(t, 1.0, score, 1e-12)
	assert.Equal(t, domrisk.CategoryHigh, category)
}

func TestEngine_SetWeights_Recalibra(t *testing.T) {
	engine := apprisk.NewEngine(fixedScorer{polarity: 0}, domrisk.DefaultWeights())
	engine.SetWeights(domrisk.WeightsFromMean(0.9))

	w := engine.Weights()
	assert.Equal(t, 0.9, w.NewsSentiment)
	assert.InDelta(t, 0.1, w.TextualRisk, 1e-12)
}

// ──────────────────────────────────────────────────────────────────────────────
// RefreshUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_PersisteRiskFactorYRecalibra(t *testing.T) {
	inv := &fakeInventory{products: []*entity.Product{
		{ProductID: "LIB001", TotalStock: 900, MinThreshold: 1000, MaxCapacity: 10000},
		{ProductID: "LIB002", TotalStock: 6000, MinThreshold: 500, MaxCapacity: 10000},
	}}
	store := &fakeStore{}
	engine := apprisk.NewEngine(fixedScorer{}, domrisk.DefaultWeights())
	uc := apprisk.NewRefreshUseCase(inv, store, engine)

	avg, updated, err := uc.Refresh(context.Background(), batchWithScores(0.6))

	require.NoError(t, err)
	assert.InDelta(t, 0.6, avg, 1e-12)
	assert.Equal(t, 2, updated)

	// LIB001 bajo umbral → stock_risk 1.0 → (1.0*0.7+0.4*0.3)*10 = 8.2
	lib1, _ := inv.factors["LIB001"].Float64()
	assert.InDelta(t, 8.2, lib1, 1e-9)

	// LIB002 sano → stock_risk 0.2 → (0.2*0.7+0.4*0.3)*10 = 2.6
	lib2, _ := inv.factors["LIB002"].Float64()
	assert.InDelta(t, 2.6, lib2, 1e-9)

	// El motor queda recalibrado con el mismo promedio.
	w := engine.Weights()
	assert.InDelta(t, 0.6, w.NewsSentiment, 1e-12)
	assert.InDelta(t, 0.4, w.TextualRisk, 1e-12)
}

func TestRefreshFromStore_BatchAusente(t *testing.T) {
	inv := &fakeInventory{products: []*entity.Product{
		{ProductID: "LIB003", TotalStock: 1500, MinThreshold: 250, MaxCapacity: 4000},
	}}
	store := &fakeStore{err: errors.New("archivo ausente")}
	engine := apprisk.NewEngine(fixedScorer{}, domrisk.DefaultWeights())
	uc := apprisk.NewRefreshUseCase(inv, store, engine)

	avg, updated, err := uc.RefreshFromStore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0.5, avg, "sin batch el promedio en vivo cae a 0.5")
	assert.Equal(t, 1, updated)
}
