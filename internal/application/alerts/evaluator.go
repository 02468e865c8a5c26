// Package alerts evalúa condiciones de alerta sobre el inventario (stock
// bajo y riesgo alto) y las publica por el puerto Notifier, deduplicando
// por tipo y producto entre evaluaciones.
package alerts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

// highRiskThreshold factor de riesgo (0–10) a partir del cual se alerta.
var highRiskThreshold = decimal.NewFromInt(7)

// Evaluator detecta condiciones activas y las notifica una sola vez mientras
// la condición persista. Cuando la condición desaparece, la clave se libera
// y una recaída vuelve a notificar.
type Evaluator struct {
	inventory repository.InventoryRepository
	notifier  ports.Notifier

	mu     sync.Mutex
	active map[string]entity.Alert // clave: tipo + "|" + producto
}

// NewEvaluator construye el evaluador.
func NewEvaluator(inventory repository.InventoryRepository, notifier ports.Notifier) *Evaluator {
	return &Evaluator{
		inventory: inventory,
		notifier:  notifier,
		active:    make(map[string]entity.Alert),
	}
}

// Evaluate recorre el inventario, actualiza el set de alertas activas y
// notifica las condiciones nuevas. Devuelve las alertas activas tras la
// evaluación.
func (e *Evaluator) Evaluate(ctx context.Context) ([]entity.Alert, error) {
	products, err := e.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluar alertas: listar inventario: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]bool, len(e.active))
	for _, p := range products {
		if p.TotalStock <= p.MinThreshold {
			e.raise(ctx, seen, entity.AlertTypeLowStock, p.ProductID,
				fmt.Sprintf("%s stock (%d) is at or below threshold (%d)", p.ProductID, p.TotalStock, p.MinThreshold))
		}
		if p.RiskFactor.GreaterThanOrEqual(highRiskThreshold) {
			e.raise(ctx, seen, entity.AlertTypeHighRisk, p.ProductID,
				fmt.Sprintf("%s risk factor (%s) is at or above 7", p.ProductID, p.RiskFactor.StringFixed(1)))
		}
	}

	// Las condiciones que ya no se cumplen salen del set activo.
	for key := range e.active {
		if !seen[key] {
			delete(e.active, key)
		}
	}

	return e.snapshot(), nil
}

// raise registra y notifica la condición si no estaba ya activa.
func (e *Evaluator) raise(ctx context.Context, seen map[string]bool, alertType, productID, message string) {
	key := alertType + "|" + productID
	seen[key] = true
	if _, exists := e.active[key]; exists {
		return
	}

	alert := entity.Alert{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Type:      alertType,
		ProductID: productID,
		Message:   message,
		Severity:  "High",
	}
	e.active[key] = alert

	// La entrega es best effort: un canal caído no impide registrar la alerta.
	_ = e.notifier.Notify(ctx, alert)
}

// Active devuelve las alertas activas de la última evaluación.
func (e *Evaluator) Active() []entity.Alert {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

func (e *Evaluator) snapshot() []entity.Alert {
	out := make([]entity.Alert, 0, len(e.active))
	for _, a := range e.active {
		out = append(out, a)
	}
	return out
}
