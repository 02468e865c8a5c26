package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SupplyRisk-api/internal/application/analysis"
	"github.com/jhoicas/SupplyRisk-api/internal/application/dto"
)

// NewsHandler maneja el pipeline de noticias y el chat del operador.
type NewsHandler struct {
	uc *analysis.UseCase
}

// NewNewsHandler construye el handler.
func NewNewsHandler(uc *analysis.UseCase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// Refresh godoc
// @Summary      Descargar y analizar noticias, y refrescar el riesgo
// @Description  Ejecuta el pipeline completo: proveedor de noticias, análisis
//
//	de sentimiento, informe del LLM y recálculo del risk_factor
//	de cada producto. Puede tardar varios segundos.
//
// @Tags         news
// @Produce      json
// @Success      200  {object}  dto.NewsRefreshResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/news/refresh [post]
func (h *NewsHandler) Refresh(c *fiber.Ctx) error {
	sum, err := h.uc.RefreshNews(c.Context())
	if err != nil {
		if strings.Contains(err.Error(), "EVENT_REGISTRY_API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "NEWS_UNAVAILABLE", Message: "el proveedor de noticias no está configurado",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
	}
	return c.JSON(dto.NewsRefreshResponse{
		Articles:     sum.Articles,
		AvgSentiment: sum.AvgSentiment,
		RiskUpdated:  sum.ProductsUpdated > 0,
	})
}

// Latest godoc
// @Summary      Último batch de noticias analizadas
// @Tags         news
// @Produce      json
// @Success      200  {array}  entity.ArticleAnalysis
// @Router       /api/news [get]
func (h *NewsHandler) Latest(c *fiber.Ctx) error {
	return c.JSON(h.uc.Latest())
}

// Chat godoc
// @Summary      Preguntar al asistente de riesgo
// @Description  Responde con el LLM usando como contexto el inventario actual
//
//	y los titulares más recientes.
//
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "question"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *NewsHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "question es obligatorio"})
	}

	answer, err := h.uc.Chat(c.Context(), req.Question)
	if err != nil {
		if strings.Contains(err.Error(), "GROQ_API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "el asistente de IA no está configurado",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
	}
	return c.JSON(dto.ChatResponse{Answer: answer})
}
