package alerts_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SupplyRisk-api/internal/application/alerts"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

type stubInventory struct{ products []*entity.Product }

func (s *stubInventory) GetByID(context.Context, string) (*entity.Product, error) { return nil, nil }
func (s *stubInventory) List(context.Context) ([]*entity.Product, error)          { return s.products, nil }
func (s *stubInventory) AddStock(context.Context, string, int) error              { return nil }
func (s *stubInventory) DeductStock(context.Context, string, int) (bool, error)   { return true, nil }
func (s *stubInventory) UpdateRiskFactor(context.Context, string, decimal.Decimal) error {
	return nil
}

type captureNotifier struct{ sent []entity.Alert }

func (c *captureNotifier) Notify(_ context.Context, a entity.Alert) error {
	c.sent = append(c.sent, a)
	return nil
}

func producto(id string, stock, threshold int, riskFactor float64) *entity.Product {
	return &entity.Product{
		ProductID:    id,
		TotalStock:   stock,
		MinThreshold: threshold,
		MaxCapacity:  10000,
		RiskFactor:   decimal.NewFromFloat(riskFactor),
	}
}

func TestEvaluate_DetectaAmbasCondiciones(t *testing.T) {
	inv := &stubInventory{products: []*entity.Product{
		producto("LIB001", 800, 1000, 8.2), // stock bajo Y riesgo alto
		producto("LIB002", 3000, 500, 2.6), // sano
	}}
	notifier := &captureNotifier{}
	ev := alerts.NewEvaluator(inv, notifier)

	active, err := ev.Evaluate(context.Background())
	require.NoError(t, err)

	require.Len(t, active, 2)
	types := map[string]bool{}
	for _, a := range active {
		assert.Equal(t, "LIB001", a.ProductID)
		assert.Equal(t, "High", a.Severity)
		assert.NotEmpty(t, a.ID)
		types[a.Type] = true
	}
	assert.True(t, types[entity.AlertTypeLowStock])
	assert.True(t, types[entity.AlertTypeHighRisk])
	assert.Len(t, notifier.sent, 2)
}

func TestEvaluate_StockIgualAlUmbralAlerta(t *testing.T) {
	inv := &stubInventory{products: []*entity.Product{producto("LIB003", 250, 250, 0)}}
	ev := alerts.NewEvaluator(inv, &captureNotifier{})

	active, err := ev.Evaluate(context.Background())
	require.NoError(t, err)

	require.Len(t, active, 1)
	assert.Equal(t, entity.AlertTypeLowStock, active[0].Type)
}

func TestEvaluate_NoDuplicaMientrasPersisteLaCondicion(t *testing.T) {
	inv := &stubInventory{products: []*entity.Product{producto("LIB001", 800, 1000, 0)}}
	notifier := &captureNotifier{}
	ev := alerts.NewEvaluator(inv, notifier)

	_, err := ev.Evaluate(context.Background())
	require.NoError(t, err)
	active, err := ev.Evaluate(context.Background())
	require.NoError(t, err)

	assert.Len(t, active, 1, "la condición persistente se mantiene como una sola alerta")
	assert.Len(t, notifier.sent, 1, "solo se notifica la primera vez")
}

func TestEvaluate_RecaidaVuelveANotificar(t *testing.T) {
	inv := &stubInventory{products: []*entity.Product{producto("LIB001", 800, 1000, 0)}}
	notifier := &captureNotifier{}
	ev := alerts.NewEvaluator(inv, notifier)

	_, err := ev.Evaluate(context.Background())
	require.NoError(t, err)

	// La condición desaparece...
	inv.products = []*entity.Product{producto("LIB001", 5000, 1000, 0)}
	active, err := ev.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)

	// ...y al recaer se notifica de nuevo.
	inv.products = []*entity.Product{producto("LIB001", 700, 1000, 0)}
	_, err = ev.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Len(t, notifier.sent, 2)
}

func TestActive_ReflejaLaUltimaEvaluacion(t *testing.T) {
	inv := &stubInventory{products: []*entity.Product{producto("LIB002", 100, 500, 9.0)}}
	ev := alerts.NewEvaluator(inv, &captureNotifier{})

	assert.Empty(t, ev.Active(), "sin evaluar no hay alertas")

	_, err := ev.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Len(t, ev.Active(), 2)
}
