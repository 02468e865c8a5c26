package ports

import (
	"context"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

// Notifier define el puerto de entrega de alertas. El canal concreto
// (email, Slack, log) es un colaborador externo; el evaluador solo publica.
type Notifier interface {
	Notify(ctx context.Context, alert entity.Alert) error
}
