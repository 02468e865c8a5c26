package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SupplyRisk-api/internal/application/alerts"
	"github.com/jhoicas/SupplyRisk-api/internal/application/analytics"
	"github.com/jhoicas/SupplyRisk-api/internal/application/ledger"
	"github.com/jhoicas/SupplyRisk-api/internal/application/risk"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
	domrisk "github.com/jhoicas/SupplyRisk-api/internal/domain/risk"
	apphttp "github.com/jhoicas/SupplyRisk-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para levantar la app sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memInventory struct {
	products map[string]*entity.Product
}

func (m *memInventory) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, exists := m.products[id]
	if !exists {
		return nil, nil
	}
	return p, nil
}

func (m *memInventory) List(context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memInventory) AddStock(_ context.Context, id string, qty int) error {
	m.products[id].TotalStock += qty
	return nil
}

func (m *memInventory) DeductStock(_ context.Context, id string, qty int) (bool, error) {
	if m.products[id].TotalStock < qty {
		return false, nil
	}
	m.products[id].TotalStock -= qty
	return true, nil
}

func (m *memInventory) UpdateRiskFactor(context.Context, string, decimal.Decimal) error { return nil }

type memDamage struct{ events []*entity.DamageEvent }

func (m *memDamage) Create(_ context.Context, e *entity.DamageEvent) error {
	m.events = append(m.events, e)
	return nil
}
func (m *memDamage) List(context.Context) ([]*entity.DamageEvent, error) { return m.events, nil }

type memDelays struct{ delays []*entity.TransportDelay }

func (m *memDelays) Create(_ context.Context, d *entity.TransportDelay) error {
	m.delays = append(m.delays, d)
	return nil
}
func (m *memDelays) List(context.Context) ([]*entity.TransportDelay, error) { return m.delays, nil }

type memSales struct{ sales []*entity.SaleEvent }

func (m *memSales) Create(_ context.Context, s *entity.SaleEvent) error {
	m.sales = append(m.sales, s)
	return nil
}
func (m *memSales) List(context.Context) ([]*entity.SaleEvent, error) { return m.sales, nil }

type passthroughTx struct {
	inv    repository.InventoryRepository
	damage repository.DamageLogRepository
	delays repository.TransportDelayRepository
	sales  repository.SalesLogRepository
}

func (t *passthroughTx) Run(_ context.Context, fn func(
	inv repository.InventoryRepository,
	damage repository.DamageLogRepository,
	delays repository.TransportDelayRepository,
	sales repository.SalesLogRepository,
) error) error {
	return fn(t.inv, t.damage, t.delays, t.sales)
}

type neutralScorer struct{}

func (neutralScorer) Polarity(string) float64 { return 0 }

type silentNotifier struct{}

func (silentNotifier) Notify(context.Context, entity.Alert) error { return nil }

func newTestApp() (*fiber.App, *memInventory) {
	inv := &memInventory{products: map[string]*entity.Product{
		"LIB001": {
			ProductID: "LIB001", Name: "Standard Lithium Battery",
			TotalStock: 5000, MinThreshold: 1000, MaxCapacity: 10000,
			UnitPrice: decimal.NewFromFloat(50.0),
		},
	}}
	damage := &memDamage{}
	delays := &memDelays{}
	sales := &memSales{}
	tx := &passthroughTx{inv: inv, damage: damage, delays: delays, sales: sales}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC:    ledger.NewUseCase(tx, inv, damage, delays, sales),
		RiskEngine:  risk.NewEngine(neutralScorer{}, domrisk.DefaultWeights()),
		Alerts:      alerts.NewEvaluator(inv, silentNotifier{}),
		DashboardUC: analytics.NewDashboardUseCase(inv, damage, delays, sales),
	})
	return app, inv
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestPostInventory_Add(t *testing.T) {
	app, inv := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/inventory", map[string]any{
		"product_id": "LIB001", "quantity": 300, "action": "add",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Inventory updated successfully", body["message"])
	assert.Equal(t, 5300, inv.products["LIB001"].TotalStock)
}

func TestPostSalesLog_StockInsuficiente(t *testing.T) {
	app, inv := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/sales-log", map[string]any{
		"product_id": "LIB001", "quantity": 99999,
	})

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Insufficient stock", body["message"])
	assert.Equal(t, 5000, inv.products["LIB001"].TotalStock)
}

func TestPostSalesLog_ProductoDesconocido(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/sales-log", map[string]any{
		"product_id": "NOPE", "quantity": 1,
	})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Unknown product", body["message"])
}

func TestPostDamageLog_CantidadInvalida(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/damage-log", map[string]any{
		"product_id": "LIB001", "quantity": 0, "reason": "x",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestGetInventory(t *testing.T) {
	app, _ := newTestApp()

	req, _ := http.NewRequest(fiber.MethodGet, "/api/inventory", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "LIB001", list[0]["product_id"])
	assert.Equal(t, float64(5000), list[0]["total_stock"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Riesgo y alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestPostRiskPredict(t *testing.T) {
	app, _ := newTestApp()

	// Todas las señales neutras con pesos por defecto: score 0.5 -> Medium.
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/risk/predict", map[string]any{
		"inventory_level": 2500, "lead_time": 15, "news_text": "", "textual_risk": 5,
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Medium", body["category"])
	assert.InDelta(t, 0.5, body["score"].(float64), 1e-9)
}

func TestGetRiskWeights(t *testing.T) {
	app, _ := newTestApp()

	req, _ := http.NewRequest(fiber.MethodGet, "/api/risk/weights", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var w map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&w))
	assert.InDelta(t, 0.3, w["inventory_level"], 1e-9)
	assert.InDelta(t, 0.2, w["lead_time"], 1e-9)
}

func TestGetDashboard(t *testing.T) {
	app, _ := newTestApp()

	req, _ := http.NewRequest(fiber.MethodGet, "/api/dashboard", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sum map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	assert.Equal(t, float64(1), sum["total_products"])
	assert.NotEmpty(t, sum["date_label"])
}

func TestGetAlerts_StockBajo(t *testing.T) {
	app, inv := newTestApp()
	inv.products["LIB001"].TotalStock = 800

	req, _ := http.NewRequest(fiber.MethodGet, "/api/alerts", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Low Stock", list[0]["type"])
	assert.Equal(t, "LIB001", list[0]["product_id"])
}
