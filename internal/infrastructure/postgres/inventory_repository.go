package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	query := `
		SELECT product_id, product_name, total_stock, min_threshold, max_capacity, unit_price, risk_factor
		FROM inventory WHERE product_id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&p.ProductID, &p.Name, &p.TotalStock, &p.MinThreshold, &p.MaxCapacity, &p.UnitPrice, &p.RiskFactor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve el inventario completo ordenado por ID de producto.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT product_id, product_name, total_stock, min_threshold, max_capacity, unit_price, risk_factor
		FROM inventory ORDER BY product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.TotalStock, &p.MinThreshold,
			&p.MaxCapacity, &p.UnitPrice, &p.RiskFactor); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AddStock incrementa el stock del producto.
func (r *InventoryRepo) AddStock(ctx context.Context, productID string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory SET total_stock = total_stock + $2 WHERE product_id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// DeductStock descuenta stock solo si hay suficiente. El WHERE condicional
// hace la comprobación y el descuento en una sola sentencia atómica, así que
// dos descuentos concurrentes nunca dejan el stock negativo. Devuelve false
// si no había stock suficiente.
func (r *InventoryRepo) DeductStock(ctx context.Context, productID string, quantity int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventory SET total_stock = total_stock - $2
		 WHERE product_id = $1 AND total_stock >= $2`,
		productID, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("deduct stock: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// UpdateRiskFactor actualiza solo el factor de riesgo del producto.
func (r *InventoryRepo) UpdateRiskFactor(ctx context.Context, productID string, factor decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory SET risk_factor = $2 WHERE product_id = $1`,
		productID, factor,
	)
	if err != nil {
		return fmt.Errorf("update risk factor: %w", err)
	}
	return nil
}
