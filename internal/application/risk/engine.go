// Package risk contiene el motor de predicción de riesgo y el refresco del
// risk_factor persistido. La matemática pura vive en internal/domain/risk;
// aquí se orquesta con el scorer de sentimiento y los pesos vigentes.
package risk

import (
	"sync"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	domrisk "github.com/jhoicas/SupplyRisk-api/internal/domain/risk"
)

// Engine combina las cuatro señales (inventario, lead time, sentimiento del
// texto, riesgo textual) en un score 0–1 con su categoría. Los pesos pueden
// recalibrarse en caliente tras cada análisis de noticias.
type Engine struct {
	scorer ports.SentimentScorer

	mu      sync.RWMutex
	weights domrisk.Weights
}

// NewEngine construye el motor con el scorer léxico y los pesos iniciales.
func NewEngine(scorer ports.SentimentScorer, weights domrisk.Weights) *Engine {
	return &Engine{scorer: scorer, weights: weights}
}

// PredictRisk calcula la categoría y el score para las señales dadas.
// newsText pasa por el scorer léxico; el resto se normaliza y pondera.
func (e *Engine) PredictRisk(inventoryLevel, leadTime float64, newsText string, textualRisk float64) (string, float64) {
	polarity := e.scorer.Polarity(newsText)

	score := domrisk.Score(domrisk.Inputs{
		InventoryLevel: inventoryLevel,
		LeadTimeDays:   leadTime,
		Polarity:       polarity,
		TextualRisk:    textualRisk,
	}, e.Weights())

	return domrisk.Category(score), score
}

// Weights devuelve una copia de los pesos vigentes.
func (e *Engine) Weights() domrisk.Weights {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.weights
}

// SetWeights reemplaza los pesos vigentes (recalibración tras cada batch).
func (e *Engine) SetWeights(w domrisk.Weights) {
	e.mu.Lock()
	e.weights = w
	e.mu.Unlock()
}
