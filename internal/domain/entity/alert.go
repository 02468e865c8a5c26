package entity

import "time"

// Tipos de alerta evaluados sobre el inventario.
const (
	AlertTypeLowStock = "Low Stock"
	AlertTypeHighRisk = "High Risk"
)

// Alert condición activa detectada sobre un producto (stock bajo o riesgo alto).
// La entrega (email u otro canal) queda detrás del puerto Notifier.
type Alert struct {
	ID        string
	Timestamp time.Time
	Type      string
	ProductID string
	Message   string
	Severity  string
}
