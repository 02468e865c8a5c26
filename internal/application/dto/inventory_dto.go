package dto

import (
	"time"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductDTO fila de inventario para respuestas de la API.
type ProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	TotalStock   int             `json:"total_stock"`
	MinThreshold int             `json:"min_threshold"`
	MaxCapacity  int             `json:"max_capacity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	RiskFactor   decimal.Decimal `json:"risk_factor"`
}

// ProductToDTO mapea la entidad a su DTO.
func ProductToDTO(p *entity.Product) ProductDTO {
	return ProductDTO{
		ProductID:    p.ProductID,
		ProductName:  p.Name,
		TotalStock:   p.TotalStock,
		MinThreshold: p.MinThreshold,
		MaxCapacity:  p.MaxCapacity,
		UnitPrice:    p.UnitPrice,
		RiskFactor:   p.RiskFactor,
	}
}

// UpdateInventoryRequest body para POST /api/inventory/update.
// Action "add" suma stock; cualquier otro valor descuenta.
type UpdateInventoryRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Action    string `json:"action"`
}

// DamageEventDTO fila del damage_log para respuestas de la API.
type DamageEventDTO struct {
	LogID     int64     `json:"log_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity_damaged"`
	Reason    string    `json:"damage_reason"`
	Timestamp time.Time `json:"timestamp"`
}

// DamageEventToDTO mapea la entidad a su DTO.
func DamageEventToDTO(d *entity.DamageEvent) DamageEventDTO {
	return DamageEventDTO{
		LogID:     d.LogID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		Reason:    d.Reason,
		Timestamp: d.Timestamp,
	}
}

// LogDamageRequest body para POST /api/damage-log.
type LogDamageRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// TransportDelayDTO fila de transport_delays para respuestas de la API.
type TransportDelayDTO struct {
	DelayID          int64     `json:"delay_id"`
	ProductID        string    `json:"product_id"`
	ExpectedDelivery time.Time `json:"expected_delivery"`
	ActualDelivery   time.Time `json:"actual_delivery"`
	Reason           string    `json:"delay_reason"`
	DelayDays        int       `json:"delay_days"`
}

// TransportDelayToDTO mapea la entidad a su DTO.
func TransportDelayToDTO(d *entity.TransportDelay) TransportDelayDTO {
	return TransportDelayDTO{
		DelayID:          d.DelayID,
		ProductID:        d.ProductID,
		ExpectedDelivery: d.ExpectedDelivery,
		ActualDelivery:   d.ActualDelivery,
		Reason:           d.Reason,
		DelayDays:        d.DelayDays(),
	}
}

// LogTransportDelayRequest body para POST /api/transport-delays.
type LogTransportDelayRequest struct {
	ProductID        string    `json:"product_id"`
	ExpectedDelivery time.Time `json:"expected_delivery"`
	ActualDelivery   time.Time `json:"actual_delivery"`
	Reason           string    `json:"reason"`
}

// SaleEventDTO fila del sales_log para respuestas de la API.
type SaleEventDTO struct {
	SaleID    int64     `json:"sale_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity_sold"`
	Timestamp time.Time `json:"sale_timestamp"`
	Status    string    `json:"sale_status"`
}

// SaleEventToDTO mapea la entidad a su DTO.
func SaleEventToDTO(s *entity.SaleEvent) SaleEventDTO {
	return SaleEventDTO{
		SaleID:    s.SaleID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Timestamp: s.Timestamp,
		Status:    s.Status,
	}
}

// LogSaleRequest body para POST /api/sales-log.
type LogSaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
