package ledger

import (
	"context"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el insert de log y la mutación
// de stock de una misma operación sean una sola unidad lógica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		inv repository.InventoryRepository,
		damage repository.DamageLogRepository,
		delays repository.TransportDelayRepository,
		sales repository.SalesLogRepository,
	) error) error
}
