package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SupplyRisk-api/internal/application/dto"
	"github.com/jhoicas/SupplyRisk-api/internal/application/ledger"
)

// LedgerHandler maneja las peticiones HTTP del libro de inventario:
// consultas y mutaciones de stock, daños, retrasos y ventas.
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// operationStatus mapea el mensaje de una operación fallida a su código HTTP.
// El cuerpo siempre es OperationResponse: el contrato de las mutaciones es un
// resultado estructurado, nunca una excepción.
func operationStatus(res ledger.Result) int {
	if res.Success {
		return fiber.StatusOK
	}
	switch res.Message {
	case ledger.MsgUnknownProduct:
		return fiber.StatusNotFound
	case ledger.MsgInsufficientStock:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func operationJSON(c *fiber.Ctx, res ledger.Result) error {
	return c.Status(operationStatus(res)).JSON(dto.OperationResponse{
		Success: res.Success,
		Message: res.Message,
	})
}

// ListInventory godoc
// @Summary      Inventario completo con factor de riesgo
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *LedgerHandler) ListInventory(c *fiber.Ctx) error {
	products, err := h.uc.Inventory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductToDTO(p))
	}
	return c.JSON(out)
}

// UpdateInventory godoc
// @Summary      Sumar o descontar stock de un producto
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateInventoryRequest  true  "product_id, quantity, action (add descuenta el resto)"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.OperationResponse
// @Failure      409   {object}  dto.OperationResponse
// @Router       /api/inventory [post]
func (h *LedgerHandler) UpdateInventory(c *fiber.Ctx) error {
	var req dto.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity > 0 son obligatorios"})
	}
	return operationJSON(c, h.uc.UpdateInventory(c.Context(), req.ProductID, req.Quantity, req.Action))
}

// ListDamageLog godoc
// @Summary      Eventos de daño registrados
// @Tags         ledger
// @Produce      json
// @Success      200  {array}   dto.DamageEventDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/damage-log [get]
func (h *LedgerHandler) ListDamageLog(c *fiber.Ctx) error {
	events, err := h.uc.DamageLog(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.DamageEventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, dto.DamageEventToDTO(e))
	}
	return c.JSON(out)
}

// LogDamage godoc
// @Summary      Registrar mercancía dañada (descuenta stock)
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LogDamageRequest  true  "product_id, quantity, reason"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.OperationResponse
// @Failure      409   {object}  dto.OperationResponse
// @Router       /api/damage-log [post]
func (h *LedgerHandler) LogDamage(c *fiber.Ctx) error {
	var req dto.LogDamageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.ProductID == "" || req.Quantity <= 0 || req.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, quantity > 0 y reason son obligatorios"})
	}
	return operationJSON(c, h.uc.LogDamage(c.Context(), req.ProductID, req.Quantity, req.Reason))
}

// ListTransportDelays godoc
// @Summary      Retrasos de transporte registrados
// @Tags         ledger
// @Produce      json
// @Success      200  {array}   dto.TransportDelayDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transport-delays [get]
func (h *LedgerHandler) ListTransportDelays(c *fiber.Ctx) error {
	delays, err := h.uc.TransportDelays(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TransportDelayDTO, 0, len(delays))
	for _, d := range delays {
		out = append(out, dto.TransportDelayToDTO(d))
	}
	return c.JSON(out)
}

// LogTransportDelay godoc
// @Summary      Registrar un retraso de transporte (no afecta stock)
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LogTransportDelayRequest  true  "product_id, expected_delivery, actual_delivery, reason"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.OperationResponse
// @Router       /api/transport-delays [post]
func (h *LedgerHandler) LogTransportDelay(c *fiber.Ctx) error {
	var req dto.LogTransportDelayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.ProductID == "" || req.ExpectedDelivery.IsZero() || req.ActualDelivery.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y ambas fechas son obligatorios"})
	}
	return operationJSON(c, h.uc.LogTransportDelay(c.Context(), req.ProductID, req.ExpectedDelivery, req.ActualDelivery, req.Reason))
}

// ListSalesLog godoc
// @Summary      Ventas registradas
// @Tags         ledger
// @Produce      json
// @Success      200  {array}   dto.SaleEventDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales-log [get]
func (h *LedgerHandler) ListSalesLog(c *fiber.Ctx) error {
	sales, err := h.uc.SalesLog(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SaleEventDTO, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.SaleEventToDTO(s))
	}
	return c.JSON(out)
}

// LogSale godoc
// @Summary      Registrar una venta (descuenta stock si alcanza)
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LogSaleRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.OperationResponse
// @Failure      409   {object}  dto.OperationResponse
// @Router       /api/sales-log [post]
func (h *LedgerHandler) LogSale(c *fiber.Ctx) error {
	var req dto.LogSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity > 0 son obligatorios"})
	}
	return operationJSON(c, h.uc.LogSales(c.Context(), req.ProductID, req.Quantity))
}
