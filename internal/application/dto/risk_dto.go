package dto

// PredictRiskRequest body para POST /api/risk/predict.
// TextualRisk es la magnitud cualitativa 0–10 extraída de la noticia,
// distinta de la polaridad de sentimiento que se calcula sobre NewsText.
type PredictRiskRequest struct {
	InventoryLevel float64 `json:"inventory_level"`
	LeadTime       float64 `json:"lead_time"`
	NewsText       string  `json:"news_text"`
	TextualRisk    float64 `json:"textual_risk"`
}

// PredictRiskResponse categoría + score numérico del motor de riesgo.
type PredictRiskResponse struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// RiskWeightsDTO pesos vigentes del motor (diagnóstico).
type RiskWeightsDTO struct {
	InventoryLevel float64 `json:"inventory_level"`
	LeadTime       float64 `json:"lead_time"`
	NewsSentiment  float64 `json:"news_sentiment"`
	TextualRisk    float64 `json:"textual_risk"`
}
