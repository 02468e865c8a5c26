package entity

import "github.com/shopspring/decimal"

// Product representa una fila del inventario de baterías.
// TotalStock se muta solo vía operaciones del ledger; RiskFactor (0–10) lo
// escribe el refresco de riesgo y arranca en 0.
type Product struct {
	ProductID    string // código único y estable (ej. LIB001)
	Name         string
	TotalStock   int
	MinThreshold int
	MaxCapacity  int
	UnitPrice    decimal.Decimal
	RiskFactor   decimal.Decimal
}

// BelowThreshold indica si el stock actual está en o por debajo del mínimo.
func (p *Product) BelowThreshold() bool {
	return p.TotalStock <= p.MinThreshold
}
