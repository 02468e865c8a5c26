package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SupplyRisk-api/internal/application/dto"
	"github.com/jhoicas/SupplyRisk-api/internal/application/risk"
)

// RiskHandler maneja los endpoints del motor de predicción de riesgo.
type RiskHandler struct {
	engine *risk.Engine
}

// NewRiskHandler construye el handler.
func NewRiskHandler(engine *risk.Engine) *RiskHandler {
	return &RiskHandler{engine: engine}
}

// Predict godoc
// @Summary      Predecir la categoría de riesgo de un escenario
// @Description  Combina nivel de inventario, lead time, sentimiento del texto
//
//	y riesgo textual con los pesos vigentes del motor.
//
// @Tags         risk
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PredictRiskRequest  true  "inventory_level, lead_time, news_text, textual_risk (0-10)"
// @Success      200   {object}  dto.PredictRiskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/risk/predict [post]
func (h *RiskHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictRiskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.InventoryLevel < 0 || req.LeadTime < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventory_level y lead_time no pueden ser negativos"})
	}

	category, score := h.engine.PredictRisk(req.InventoryLevel, req.LeadTime, req.NewsText, req.TextualRisk)
	return c.JSON(dto.PredictRiskResponse{Category: category, Score: score})
}

// Weights godoc
// @Summary      Pesos vigentes del motor (diagnóstico)
// @Tags         risk
// @Produce      json
// @Success      200  {object}  dto.RiskWeightsDTO
// @Router       /api/risk/weights [get]
func (h *RiskHandler) Weights(c *fiber.Ctx) error {
	w := h.engine.Weights()
	return c.JSON(dto.RiskWeightsDTO{
		InventoryLevel: w.InventoryLevel,
		LeadTime:       w.LeadTime,
		NewsSentiment:  w.NewsSentiment,
		TextualRisk:    w.TextualRisk,
	})
}
