// Package ledger implementa las operaciones del libro de inventario:
// mutación de stock, daños, retrasos de transporte y ventas.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/SupplyRisk-api/internal/domain"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

// UseCase agrupa las operaciones del ledger. Las mutaciones devuelven un
// Result estructurado; las lecturas devuelven entidades y error.
//
// Decisiones frente al diseño original:
//   - el descuento de stock es un UPDATE condicional atómico
//     (WHERE total_stock >= cantidad), lo que elimina la carrera de
//     sobreventa del read-check-then-write y a la vez impone piso cero;
//   - toda mutación valida primero que el producto exista.
type UseCase struct {
	tx        TxRunner
	inventory repository.InventoryRepository
	damage    repository.DamageLogRepository
	delays    repository.TransportDelayRepository
	sales     repository.SalesLogRepository
}

// NewUseCase construye el caso de uso con el runner transaccional y los
// repositorios (atados al pool) para operaciones de una sola sentencia.
func NewUseCase(
	tx TxRunner,
	inventory repository.InventoryRepository,
	damage repository.DamageLogRepository,
	delays repository.TransportDelayRepository,
	sales repository.SalesLogRepository,
) *UseCase {
	return &UseCase{
		tx:        tx,
		inventory: inventory,
		damage:    damage,
		delays:    delays,
		sales:     sales,
	}
}

// requireProduct verifica que el producto exista antes de cualquier mutación.
func (uc *UseCase) requireProduct(ctx context.Context, productID string) error {
	p, err := uc.inventory.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrUnknownProduct
	}
	return nil
}

// UpdateInventory suma stock con action "add" (insensible a mayúsculas);
// cualquier otro valor descuenta. El descuento es condicional: si el stock
// resultante quedara negativo, la operación falla y no escribe nada.
func (uc *UseCase) UpdateInventory(ctx context.Context, productID string, quantity int, action string) Result {
	if err := uc.requireProduct(ctx, productID); err != nil {
		return uc.failFrom("updating inventory", err)
	}

	if strings.EqualFold(action, "add") {
		if err := uc.inventory.AddStock(ctx, productID, quantity); err != nil {
			return fail(fmt.Sprintf("Error updating inventory: %v", err))
		}
		return ok(MsgInventoryUpdated)
	}

	deducted, err := uc.inventory.DeductStock(ctx, productID, quantity)
	if err != nil {
		return fail(fmt.Sprintf("Error updating inventory: %v", err))
	}
	if !deducted {
		return fail(MsgInsufficientStock)
	}
	return ok(MsgInventoryUpdated)
}

// LogDamage inserta el evento de daño y descuenta el stock dañado en una
// sola transacción: o quedan ambos escritos o ninguno.
func (uc *UseCase) LogDamage(ctx context.Context, productID string, quantity int, reason string) Result {
	if err := uc.requireProduct(ctx, productID); err != nil {
		return uc.failFrom("logging damage", err)
	}

	err := uc.tx.Run(ctx, func(
		inv repository.InventoryRepository,
		damage repository.DamageLogRepository,
		_ repository.TransportDelayRepository,
		_ repository.SalesLogRepository,
	) error {
		if err := damage.Create(ctx, &entity.DamageEvent{
			ProductID: productID,
			Quantity:  quantity,
			Reason:    reason,
			Timestamp: time.Now(),
		}); err != nil {
			return err
		}
		deducted, err := inv.DeductStock(ctx, productID, quantity)
		if err != nil {
			return err
		}
		if !deducted {
			return domain.ErrInsufficientStock
		}
		return nil
	})
	if err != nil {
		return uc.failFrom("logging damage", err)
	}
	return ok(MsgDamageLogged)
}

// LogTransportDelay inserta el retraso. No afecta stock.
func (uc *UseCase) LogTransportDelay(ctx context.Context, productID string, expected, actual time.Time, reason string) Result {
	if err := uc.requireProduct(ctx, productID); err != nil {
		return uc.failFrom("logging transport delay", err)
	}

	err := uc.delays.Create(ctx, &entity.TransportDelay{
		ProductID:        productID,
		ExpectedDelivery: expected,
		ActualDelivery:   actual,
		Reason:           reason,
	})
	if err != nil {
		return fail(fmt.Sprintf("Error logging transport delay: %v", err))
	}
	return ok(MsgDelayLogged)
}

// LogSales descuenta stock e inserta la venta con estado "Normal" en una
// sola transacción. El descuento condicional hace atómica la comprobación
// de stock: dos ventas concurrentes no pueden sobrevender.
func (uc *UseCase) LogSales(ctx context.Context, productID string, quantity int) Result {
	if err := uc.requireProduct(ctx, productID); err != nil {
		return uc.failFrom("logging sale", err)
	}

	err := uc.tx.Run(ctx, func(
		inv repository.InventoryRepository,
		_ repository.DamageLogRepository,
		_ repository.TransportDelayRepository,
		sales repository.SalesLogRepository,
	) error {
		deducted, err := inv.DeductStock(ctx, productID, quantity)
		if err != nil {
			return err
		}
		if !deducted {
			return domain.ErrInsufficientStock
		}
		return sales.Create(ctx, &entity.SaleEvent{
			ProductID: productID,
			Quantity:  quantity,
			Timestamp: time.Now(),
			Status:    entity.SaleStatusNormal,
		})
	})
	if err != nil {
		return uc.failFrom("logging sale", err)
	}
	return ok(MsgSaleLogged)
}

// failFrom traduce errores tipados a su mensaje de contrato y el resto a un
// mensaje de error de almacenamiento.
func (uc *UseCase) failFrom(op string, err error) Result {
	switch {
	case errors.Is(err, domain.ErrUnknownProduct):
		return fail(MsgUnknownProduct)
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(MsgInsufficientStock)
	default:
		return fail(fmt.Sprintf("Error %s: %v", op, err))
	}
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// Inventory devuelve todas las filas de inventario.
func (uc *UseCase) Inventory(ctx context.Context) ([]*entity.Product, error) {
	return uc.inventory.List(ctx)
}

// DamageLog devuelve el historial de daños.
func (uc *UseCase) DamageLog(ctx context.Context) ([]*entity.DamageEvent, error) {
	return uc.damage.List(ctx)
}

// TransportDelays devuelve el historial de retrasos.
func (uc *UseCase) TransportDelays(ctx context.Context) ([]*entity.TransportDelay, error) {
	return uc.delays.List(ctx)
}

// SalesLog devuelve el historial de ventas.
func (uc *UseCase) SalesLog(ctx context.Context) ([]*entity.SaleEvent, error) {
	return uc.sales.List(ctx)
}
