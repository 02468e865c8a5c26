// Package report arma el informe de riesgo de la cadena de suministro:
// inventario con su risk_factor, alertas activas y últimas noticias
// analizadas, renderizado a PDF por el generador inyectado.
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/SupplyRisk-api/internal/application/alerts"
	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/repository"
)

// Generator puerto de salida hacia el renderizador del informe.
type Generator interface {
	GenerateRiskReport(
		ctx context.Context,
		products []*entity.Product,
		active []entity.Alert,
		news []entity.ArticleAnalysis,
	) ([]byte, error)
}

// UseCase reúne los datos del informe y delega el render.
type UseCase struct {
	inventory repository.InventoryRepository
	evaluator *alerts.Evaluator
	store     ports.AnalysisStore
	generator Generator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	inventory repository.InventoryRepository,
	evaluator *alerts.Evaluator,
	store ports.AnalysisStore,
	generator Generator,
) *UseCase {
	return &UseCase{inventory: inventory, evaluator: evaluator, store: store, generator: generator}
}

// RiskReport evalúa alertas sobre el estado actual y genera el PDF.
// Un batch de noticias ausente no impide el informe: sale sin esa sección.
func (uc *UseCase) RiskReport(ctx context.Context) ([]byte, error) {
	products, err := uc.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("informe de riesgo: listar inventario: %w", err)
	}

	active, err := uc.evaluator.Evaluate(ctx)
	if err != nil {
		return nil, fmt.Errorf("informe de riesgo: evaluar alertas: %w", err)
	}

	news, err := uc.store.Load()
	if err != nil {
		news = nil
	}

	return uc.generator.GenerateRiskReport(ctx, products, active, news)
}
