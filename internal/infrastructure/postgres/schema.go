package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// ddl sentencias de creación del esquema del ledger. Idempotentes.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS inventory (
		product_id    TEXT PRIMARY KEY,
		product_name  TEXT NOT NULL,
		total_stock   INTEGER NOT NULL,
		min_threshold INTEGER NOT NULL,
		max_capacity  INTEGER NOT NULL,
		unit_price    NUMERIC(12,2) NOT NULL,
		risk_factor   NUMERIC(4,1) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS damage_log (
		log_id           SERIAL PRIMARY KEY,
		product_id       TEXT NOT NULL REFERENCES inventory(product_id),
		quantity_damaged INTEGER NOT NULL,
		damage_reason    TEXT NOT NULL,
		timestamp        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transport_delays (
		delay_id          SERIAL PRIMARY KEY,
		product_id        TEXT NOT NULL REFERENCES inventory(product_id),
		expected_delivery DATE NOT NULL,
		actual_delivery   DATE NOT NULL,
		delay_reason      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales_log (
		sale_id        SERIAL PRIMARY KEY,
		product_id     TEXT NOT NULL REFERENCES inventory(product_id),
		quantity_sold  INTEGER NOT NULL,
		sale_timestamp TIMESTAMPTZ NOT NULL DEFAULT now(),
		sale_status    TEXT NOT NULL
	)`,
}

// seedProduct valores canónicos del catálogo de baterías de litio.
type seedProduct struct {
	id        string
	name      string
	stock     int
	threshold int
	capacity  int
	price     decimal.Decimal
}

func seedProducts() []seedProduct {
	return []seedProduct{
		{"LIB001", "Standard Lithium Battery", 5000, 1000, 10000, decimal.NewFromFloat(50.0)},
		{"LIB002", "High-Capacity Battery", 3000, 500, 7000, decimal.NewFromFloat(75.0)},
		{"LIB003", "EV Battery Module", 1500, 250, 4000, decimal.NewFromFloat(200.0)},
	}
}

// InitSchema crea las tablas del ledger y siembra el catálogo canónico.
// El seed es deliberadamente destructivo sobre los productos canónicos: si ya
// existen, sus valores (stock incluido) vuelven al estado inicial y el
// risk_factor se reinicia a 0.
func InitSchema(ctx context.Context, q Querier) error {
	for _, stmt := range ddl {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	const upsert = `
		INSERT INTO inventory (product_id, product_name, total_stock, min_threshold, max_capacity, unit_price, risk_factor)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		ON CONFLICT (product_id) DO UPDATE SET
			product_name  = EXCLUDED.product_name,
			total_stock   = EXCLUDED.total_stock,
			min_threshold = EXCLUDED.min_threshold,
			max_capacity  = EXCLUDED.max_capacity,
			unit_price    = EXCLUDED.unit_price,
			risk_factor   = 0`

	for _, p := range seedProducts() {
		if _, err := q.Exec(ctx, upsert, p.id, p.name, p.stock, p.threshold, p.capacity, p.price); err != nil {
			return fmt.Errorf("seed inventory %s: %w", p.id, err)
		}
	}
	return nil
}
