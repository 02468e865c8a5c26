package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen operativo del ledger para el dashboard.
type DashboardSummaryDTO struct {
	TotalProducts       int             `json:"total_products"`
	TotalStockValue     decimal.Decimal `json:"total_stock_value"`
	CapacityUtilization decimal.Decimal `json:"capacity_utilization"`
	LowStockProducts    int             `json:"low_stock_products"`
	UnitsSold           int             `json:"units_sold"`
	UnitsDamaged        int             `json:"units_damaged"`
	DamageLossValue     decimal.Decimal `json:"damage_loss_value"`
	AvgDelayDays        float64         `json:"avg_delay_days"`
	DateLabel           string          `json:"date_label"`
}
