package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

var _ repository.TransportDelayRepository = (*TransportDelayRepo)(nil)

// TransportDelayRepo implementación del puerto TransportDelayRepository sobre PostgreSQL (usable con pool o tx).
type TransportDelayRepo struct {
	q Querier
}

// NewTransportDelayRepository construye el adaptador de retrasos. Pasar pool o tx (Querier).
func NewTransportDelayRepository(q Querier) *TransportDelayRepo {
	return &TransportDelayRepo{q: q}
}

// Create inserta el retraso y asigna el DelayID generado.
func (r *TransportDelayRepo) Create(ctx context.Context, delay *entity.TransportDelay) error {
	query := `
		INSERT INTO transport_delays (product_id, expected_delivery, actual_delivery, delay_reason)
		VALUES ($1, $2, $3, $4)
		RETURNING delay_id`
	err := r.q.QueryRow(ctx, query,
		delay.ProductID, delay.ExpectedDelivery, delay.ActualDelivery, delay.Reason,
	).Scan(&delay.DelayID)
	if err != nil {
		return fmt.Errorf("insert transport delay: %w", err)
	}
	return nil
}

// List devuelve los retrasos registrados, los más recientes primero.
func (r *TransportDelayRepo) List(ctx context.Context) ([]*entity.TransportDelay, error) {
	query := `
		SELECT delay_id, product_id, expected_delivery, actual_delivery, delay_reason
		FROM transport_delays ORDER BY delay_id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transport delays: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransportDelay
	for rows.Next() {
		var d entity.TransportDelay
		if err := rows.Scan(&d.DelayID, &d.ProductID, &d.ExpectedDelivery, &d.ActualDelivery, &d.Reason); err != nil {
			return nil, fmt.Errorf("scan transport delay: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
