package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SupplyRisk-api/internal/application/alerts"
	"github.com/jhoicas/SupplyRisk-api/internal/application/dto"
)

// AlertsHandler maneja la consulta de alertas activas.
type AlertsHandler struct {
	evaluator *alerts.Evaluator
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(evaluator *alerts.Evaluator) *AlertsHandler {
	return &AlertsHandler{evaluator: evaluator}
}

// List godoc
// @Summary      Alertas activas de stock bajo y riesgo alto
// @Description  Reevalúa las condiciones sobre el inventario actual antes de
//
//	responder, así el resultado refleja el último estado.
//
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   dto.AlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertsHandler) List(c *fiber.Ctx) error {
	active, err := h.evaluator.Evaluate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.AlertDTO, 0, len(active))
	for _, a := range active {
		out = append(out, dto.AlertToDTO(a))
	}
	return c.JSON(out)
}
