package entity

import "time"

// SaleStatusNormal estado fijo de una venta registrada con éxito.
const SaleStatusNormal = "Normal"

// SaleEvent registro inmutable de una venta. Solo se crea si había stock
// suficiente; su creación descuenta stock en la misma transacción.
type SaleEvent struct {
	SaleID    int64
	ProductID string
	Quantity  int
	Timestamp time.Time
	Status    string
}
