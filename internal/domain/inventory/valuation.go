package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

// TotalValue valor total del inventario (servicio de dominio).
// Valor = Σ (TotalStock * UnitPrice), redondeado a 2 decimales.
func TotalValue(products []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(decimal.NewFromInt(int64(p.TotalStock)).Mul(p.UnitPrice))
	}
	return total.Round(2)
}

// CapacityUtilization fracción ocupada de la capacidad total [0,1].
// Cero si no hay capacidad declarada.
func CapacityUtilization(products []*entity.Product) decimal.Decimal {
	stock, capacity := int64(0), int64(0)
	for _, p := range products {
		stock += int64(p.TotalStock)
		capacity += int64(p.MaxCapacity)
	}
	if capacity <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(stock).Div(decimal.NewFromInt(capacity)).Round(4)
}

// LossValue valor perdido por daños: Σ (cantidad dañada * precio unitario del
// producto), redondeado a 2 decimales. Los daños de productos fuera del
// catálogo actual se ignoran.
func LossValue(events []*entity.DamageEvent, products []*entity.Product) decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ProductID] = p.UnitPrice
	}
	total := decimal.Zero
	for _, e := range events {
		price, exists := prices[e.ProductID]
		if !exists {
			continue
		}
		total = total.Add(decimal.NewFromInt(int64(e.Quantity)).Mul(price))
	}
	return total.Round(2)
}
