package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

var _ repository.SalesLogRepository = (*SalesLogRepo)(nil)

// SalesLogRepo implementación del puerto SalesLogRepository sobre PostgreSQL (usable con pool o tx).
type SalesLogRepo struct {
	q Querier
}

// NewSalesLogRepository construye el adaptador del log de ventas. Pasar pool o tx (Querier).
func NewSalesLogRepository(q Querier) *SalesLogRepo {
	return &SalesLogRepo{q: q}
}

// Create inserta la venta y asigna el SaleID generado.
func (r *SalesLogRepo) Create(ctx context.Context, sale *entity.SaleEvent) error {
	query := `
		INSERT INTO sales_log (product_id, quantity_sold, sale_timestamp, sale_status)
		VALUES ($1, $2, $3, $4)
		RETURNING sale_id`
	err := r.q.QueryRow(ctx, query,
		sale.ProductID, sale.Quantity, sale.Timestamp, sale.Status,
	).Scan(&sale.SaleID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// List devuelve las ventas registradas, las más recientes primero.
func (r *SalesLogRepo) List(ctx context.Context) ([]*entity.SaleEvent, error) {
	query := `
		SELECT sale_id, product_id, quantity_sold, sale_timestamp, sale_status
		FROM sales_log ORDER BY sale_timestamp DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales log: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleEvent
	for rows.Next() {
		var s entity.SaleEvent
		if err := rows.Scan(&s.SaleID, &s.ProductID, &s.Quantity, &s.Timestamp, &s.Status); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
