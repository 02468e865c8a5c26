package repository

import (
	"context"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InventoryRepository define el puerto de persistencia para la tabla inventory (DIP).
type InventoryRepository interface {
	// GetByID devuelve el producto o nil si no existe.
	GetByID(ctx context.Context, productID string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// AddStock suma quantity al stock del producto.
	AddStock(ctx context.Context, productID string, quantity int) error
	// DeductStock descuenta quantity de forma condicional y atómica
	// (UPDATE ... WHERE total_stock >= quantity). Devuelve false si el stock
	// era insuficiente o el producto no existe; en ese caso no escribe nada.
	DeductStock(ctx context.Context, productID string, quantity int) (bool, error)
	UpdateRiskFactor(ctx context.Context, productID string, factor decimal.Decimal) error
}
