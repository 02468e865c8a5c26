package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/inventory"
)

func catalogo() []*entity.Product {
	return []*entity.Product{
		{ProductID: "LIB001", TotalStock: 5000, MaxCapacity: 10000, UnitPrice: decimal.NewFromFloat(50.0)},
		{ProductID: "LIB002", TotalStock: 3000, MaxCapacity: 7000, UnitPrice: decimal.NewFromFloat(75.0)},
		{ProductID: "LIB003", TotalStock: 1500, MaxCapacity: 4000, UnitPrice: decimal.NewFromFloat(200.0)},
	}
}

func TestTotalValue(t *testing.T) {
	// 5000*50 + 3000*75 + 1500*200 = 250000 + 225000 + 300000
	got := inventory.TotalValue(catalogo())
	assert.True(t, got.Equal(decimal.NewFromInt(775000)), "got %s", got)
}

func TestTotalValue_InventarioVacio(t *testing.T) {
	assert.True(t, inventory.TotalValue(nil).IsZero())
}

func TestCapacityUtilization(t *testing.T) {
	// (5000+3000+1500) / (10000+7000+4000) = 9500/21000
	got := inventory.CapacityUtilization(catalogo())
	want := decimal.NewFromInt(9500).Div(decimal.NewFromInt(21000)).Round(4)
	assert.True(t, got.Equal(want), "got %s", got)
}

func TestCapacityUtilization_SinCapacidad(t *testing.T) {
	assert.True(t, inventory.CapacityUtilization(nil).IsZero())
}

func TestLossValue(t *testing.T) {
	events := []*entity.DamageEvent{
		{ProductID: "LIB001", Quantity: 10, Timestamp: time.Now()},
		{ProductID: "LIB003", Quantity: 2, Timestamp: time.Now()},
		{ProductID: "RETIRADO", Quantity: 99, Timestamp: time.Now()}, // fuera del catálogo
	}
	// 10*50 + 2*200 = 900
	got := inventory.LossValue(events, catalogo())
	assert.True(t, got.Equal(decimal.NewFromInt(900)), "got %s", got)
}
