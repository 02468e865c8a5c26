package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

var _ repository.DamageLogRepository = (*DamageLogRepo)(nil)

// DamageLogRepo implementación del puerto DamageLogRepository sobre PostgreSQL (usable con pool o tx).
type DamageLogRepo struct {
	q Querier
}

// NewDamageLogRepository construye el adaptador del log de daños. Pasar pool o tx (Querier).
func NewDamageLogRepository(q Querier) *DamageLogRepo {
	return &DamageLogRepo{q: q}
}

// Create inserta el evento de daño y asigna el LogID generado.
func (r *DamageLogRepo) Create(ctx context.Context, event *entity.DamageEvent) error {
	query := `
		INSERT INTO damage_log (product_id, quantity_damaged, damage_reason, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING log_id`
	err := r.q.QueryRow(ctx, query,
		event.ProductID, event.Quantity, event.Reason, event.Timestamp,
	).Scan(&event.LogID)
	if err != nil {
		return fmt.Errorf("insert damage event: %w", err)
	}
	return nil
}

// List devuelve los eventos de daño, los más recientes primero.
func (r *DamageLogRepo) List(ctx context.Context) ([]*entity.DamageEvent, error) {
	query := `
		SELECT log_id, product_id, quantity_damaged, damage_reason, timestamp
		FROM damage_log ORDER BY timestamp DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list damage log: %w", err)
	}
	defer rows.Close()
	var list []*entity.DamageEvent
	for rows.Next() {
		var e entity.DamageEvent
		if err := rows.Scan(&e.LogID, &e.ProductID, &e.Quantity, &e.Reason, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan damage event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
