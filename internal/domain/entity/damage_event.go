package entity

import "time"

// DamageEvent registro inmutable de mercancía dañada.
// Su creación descuenta stock del producto referenciado.
type DamageEvent struct {
	LogID     int64
	ProductID string
	Quantity  int
	Reason    string
	Timestamp time.Time
}
