package dto

import (
	"time"

	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
)

// NewsRefreshResponse resumen del pipeline de análisis de noticias.
type NewsRefreshResponse struct {
	Articles     int     `json:"articles"`
	AvgSentiment float64 `json:"avg_sentiment"`
	RiskUpdated  bool    `json:"risk_factors_updated"`
}

// ChatRequest body para POST /api/chat.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse respuesta del LLM con contexto de inventario y noticias.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// AlertDTO alerta activa para respuestas de la API.
type AlertDTO struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	ProductID string    `json:"product_id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
}

// AlertToDTO mapea la entidad a su DTO.
func AlertToDTO(a entity.Alert) AlertDTO {
	return AlertDTO{
		ID:        a.ID,
		Timestamp: a.Timestamp,
		Type:      a.Type,
		ProductID: a.ProductID,
		Message:   a.Message,
		Severity:  a.Severity,
	}
}
