package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SupplyRisk-api/internal/application/analytics"
	"github.com/jhoicas/SupplyRisk-api/internal/application/dto"
)

// DashboardHandler maneja el resumen operativo del ledger.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen operativo del ledger
// @Description  Valor del inventario, utilización de capacidad, productos bajo
//
//	umbral, unidades vendidas/dañadas y retraso promedio.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	sum, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sum)
}
