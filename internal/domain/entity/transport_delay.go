package entity

import "time"

// TransportDelay registro inmutable de un retraso logístico. No afecta stock.
type TransportDelay struct {
	DelayID          int64
	ProductID        string
	ExpectedDelivery time.Time
	ActualDelivery   time.Time
	Reason           string
}

// DelayDays días de retraso (actual - esperada), puede ser negativo si llegó antes.
func (t *TransportDelay) DelayDays() int {
	return int(t.ActualDelivery.Sub(t.ExpectedDelivery).Hours() / 24)
}
