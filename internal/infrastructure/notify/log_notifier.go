// Package notify implementa el puerto Notifier. La entrega por email u otro
// canal externo queda fuera; este adaptador publica las alertas en el log
// estructurado de la aplicación.
package notify

import (
	"context"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/pkg/logger"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier publica cada alerta como un evento warn del logger.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra la alerta. Nunca falla.
func (n *LogNotifier) Notify(_ context.Context, alert entity.Alert) error {
	n.log.Warn().
		Str("alert_id", alert.ID).
		Str("type", alert.Type).
		Str("product_id", alert.ProductID).
		Str("severity", alert.Severity).
		Msg(alert.Message)
	return nil
}
