package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SupplyRisk-api/internal/application/dto"
	"github.com/jhoicas/SupplyRisk-api/internal/application/report"
)

// ReportHandler maneja la descarga del informe de riesgo en PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// RiskReport godoc
// @Summary      Informe de riesgo en PDF
// @Description  Inventario con su factor de riesgo, alertas activas y últimas
//
//	noticias analizadas.
//
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/risk [get]
func (h *ReportHandler) RiskReport(c *fiber.Ctx) error {
	pdf, err := h.uc.RiskReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := "risk-report-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
