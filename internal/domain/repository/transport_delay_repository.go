package repository

import (
	"context"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

// TransportDelayRepository define el puerto de persistencia para transport_delays (DIP).
type TransportDelayRepository interface {
	Create(ctx context.Context, delay *entity.TransportDelay) error
	List(ctx context.Context) ([]*entity.TransportDelay, error)
}
