// Package analytics contiene el caso de uso del resumen operativo del
// ledger (dashboard).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/SupplyRisk-api/internal/application/dto"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	dominv "github.com/jhoicas/SupplyRisk-api/internal/domain/inventory"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen operativo: valor del inventario,
// productos bajo umbral, ventas, daños y retraso promedio.
//
// Fuente de datos: los repositorios del ledger (consultas read-only).
type DashboardUseCase struct {
	inventory repository.InventoryRepository
	damage    repository.DamageLogRepository
	delays    repository.TransportDelayRepository
	sales     repository.SalesLogRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	inventory repository.InventoryRepository,
	damage repository.DamageLogRepository,
	delays repository.TransportDelayRepository,
	sales repository.SalesLogRepository,
) *DashboardUseCase {
	return &DashboardUseCase{inventory: inventory, damage: damage, delays: delays, sales: sales}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. inventario        → valor total, utilización de capacidad, bajo umbral
//  2. damage_log        → unidades dañadas y valor perdido
//  3. transport_delays  → retraso promedio en días
//  4. sales_log         → unidades vendidas
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type damageResult struct {
		list []*entity.DamageEvent
		err  error
	}
	type delaysResult struct {
		list []*entity.TransportDelay
		err  error
	}
	type salesResult struct {
		list []*entity.SaleEvent
		err  error
	}

	productsCh := make(chan productsResult, 1)
	damageCh := make(chan damageResult, 1)
	delaysCh := make(chan delaysResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		list, err := uc.inventory.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.damage.List(ctx)
		damageCh <- damageResult{list, err}
	}()
	go func() {
		list, err := uc.delays.List(ctx)
		delaysCh <- delaysResult{list, err}
	}()
	go func() {
		list, err := uc.sales.List(ctx)
		salesCh <- salesResult{list, err}
	}()

	products := <-productsCh
	damage := <-damageCh
	delays := <-delaysCh
	sales := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", products.err)
	}
	if damage.err != nil {
		return nil, fmt.Errorf("dashboard: damage log: %w", damage.err)
	}
	if delays.err != nil {
		return nil, fmt.Errorf("dashboard: retrasos: %w", delays.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}

	lowStock := 0
	for _, p := range products.list {
		if p.BelowThreshold() {
			lowStock++
		}
	}

	unitsSold := 0
	for _, s := range sales.list {
		unitsSold += s.Quantity
	}

	unitsDamaged := 0
	for _, d := range damage.list {
		unitsDamaged += d.Quantity
	}

	avgDelay := 0.0
	if len(delays.list) > 0 {
		total := 0
		for _, d := range delays.list {
			total += d.DelayDays()
		}
		avgDelay = float64(total) / float64(len(delays.list))
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:       len(products.list),
		TotalStockValue:     dominv.TotalValue(products.list),
		CapacityUtilization: dominv.CapacityUtilization(products.list),
		LowStockProducts:    lowStock,
		UnitsSold:           unitsSold,
		UnitsDamaged:        unitsDamaged,
		DamageLossValue:     dominv.LossValue(damage.list, products.list),
		AvgDelayDays:        avgDelay,
		DateLabel:           monthLabel(time.Now()),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
