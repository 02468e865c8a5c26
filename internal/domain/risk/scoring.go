// Package risk contiene la matemática pura del scoring de riesgo:
// normalización de señales, suma ponderada, categorías y el blend
// stock/sentimiento que alimenta el risk_factor persistido.
package risk

// Categorías del score predictivo (0–1).
const (
	CategoryHigh   = "High"
	CategoryMedium = "Medium"
	CategoryLow    = "Low"
)

// Escalas de normalización de las señales de entrada.
const (
	inventoryScale   = 5000.0 // unidades de stock
	leadTimeScale    = 30.0   // días
	textualRiskScale = 10.0   // magnitud 0–10
)

// Weights coeficientes de la suma ponderada. No tienen por qué sumar 1.
type Weights struct {
	InventoryLevel float64
	LeadTime       float64
	NewsSentiment  float64
	TextualRisk    float64
}

// DefaultWeights el set completo de respaldo cuando el batch de análisis
// no existe o está corrupto.
func DefaultWeights() Weights {
	return Weights{
		InventoryLevel: 0.3,
		LeadTime:       0.2,
		NewsSentiment:  0.3,
		TextualRisk:    0.2,
	}
}

// WeightsFromMean deriva los pesos a partir del sentimiento promedio de un
// batch presente (aunque esté vacío: en ese caso mean debe ser 0.5).
func WeightsFromMean(mean float64) Weights {
	return Weights{
		InventoryLevel: 0.3,
		LeadTime:       0.2,
		NewsSentiment:  mean,
		TextualRisk:    1 - mean,
	}
}

// MeanSentiment promedio aritmético de los scores; 0.5 si no hay ninguno.
func MeanSentiment(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.5
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Inputs señales crudas de una predicción de riesgo.
type Inputs struct {
	InventoryLevel float64 // unidades en stock
	LeadTimeDays   float64 // días de lead time
	Polarity       float64 // polaridad de sentimiento en [-1,1]
	TextualRisk    float64 // magnitud cualitativa 0–10
}

// Score suma ponderada en [0,~1]: el riesgo sube con menos inventario,
// más lead time, peor sentimiento y mayor riesgo textual.
func Score(in Inputs, w Weights) float64 {
	normInventory := clamp01(in.InventoryLevel / inventoryScale)
	normLeadTime := clamp01(in.LeadTimeDays / leadTimeScale)
	normSentiment := (in.Polarity + 1) / 2
	normTextual := clamp01(in.TextualRisk / textualRiskScale)

	return (1-normInventory)*w.InventoryLevel +
		(1-normLeadTime)*w.LeadTime +
		(1-normSentiment)*w.NewsSentiment +
		normTextual*w.TextualRisk
}

// Category mapea el score a su categoría. Los límites 0.3 y 0.7 son exactos:
// score == 0.7 es Medium y score == 0.3 es Low.
func Category(score float64) string {
	switch {
	case score > 0.7:
		return CategoryHigh
	case score > 0.3:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// StockRiskLevel nivel discreto de riesgo por stock: 1.0 bajo el umbral
// mínimo, luego escalones 0.8 / 0.5 / 0.2 según stock/capacidad.
func StockRiskLevel(stock, threshold, capacity int) float64 {
	if stock <= threshold {
		return 1.0
	}
	ratio := float64(stock) / float64(capacity)
	switch {
	case ratio < 0.3:
		return 0.8
	case ratio < 0.5:
		return 0.5
	default:
		return 0.2
	}
}

// FinalRiskFactor blend 70% stock / 30% sentimiento, escalado a 0–10 y
// acotado a [1,10]. sentimentRisk = 1 - promedio del batch de noticias.
func FinalRiskFactor(stockRisk, avgSentiment float64) float64 {
	sentimentRisk := 1 - avgSentiment
	final := (stockRisk*0.7 + sentimentRisk*0.3) * 10
	if final < 1 {
		final = 1
	}
	if final > 10 {
		final = 10
	}
	return final
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
