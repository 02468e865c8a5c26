package repository

import (
	"context"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

// SalesLogRepository define el puerto de persistencia para sales_log (DIP).
type SalesLogRepository interface {
	Create(ctx context.Context, sale *entity.SaleEvent) error
	List(ctx context.Context) ([]*entity.SaleEvent, error)
}
