package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopbot/internal/application/dto"
	"github.com/jhoicas/shopbot/internal/application/receipt"
	"github.com/jhoicas/shopbot/pkg/logger"
)

// ReceiptHandler consulta de pedidos y descarga del ticket. El ID del pedido
// (uuid) actúa como enlace de descarga, igual que en la respuesta del checkout.
type ReceiptHandler struct {
	uc  *receipt.UseCase
	log *logger.Logger
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipt.UseCase, log *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, log: log}
}

// GetOrder godoc
// @Summary      Consultar pedido
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *ReceiptHandler) GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	order, err := h.uc.GetOrder(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err, "pedido no encontrado")
	}
	return c.JSON(order)
}

// DownloadPDF godoc
// @Summary      Descargar ticket en PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /recibo/{id} [get]
func (h *ReceiptHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadReceiptPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, "pedido no encontrado")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
