package repository

import (
	"context"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

// DamageLogRepository define el puerto de persistencia para damage_log (DIP).
type DamageLogRepository interface {
	Create(ctx context.Context, event *entity.DamageEvent) error
	List(ctx context.Context) ([]*entity.DamageEvent, error)
}
