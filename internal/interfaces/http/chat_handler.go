package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopbot/internal/application/assistant"
	"github.com/jhoicas/shopbot/internal/application/dto"
	"github.com/jhoicas/shopbot/pkg/logger"
)

// ChatHandler turnos de conversación y carrito (protegido por token de conversación).
type ChatHandler struct {
	uc  *assistant.DialogueUseCase
	log *logger.Logger
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *assistant.DialogueUseCase, log *logger.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, log: log}
}

// Message godoc
// @Summary      Enviar mensaje
// @Description  Procesa un mensaje libre: agrega, quita, sugiere o avanza el checkout.
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.MessageRequest  true  "mensaje del cliente"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/message [post]
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	id := GetConversationID(c)
	if id == "" {
		return unauthorized(c)
	}
	var in dto.MessageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if strings.TrimSpace(in.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message requerido"})
	}
	out, err := h.uc.HandleMessage(c.Context(), id, in.Message)
	if err != nil {
		return writeError(c, h.log, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar por SKU
// @Description  Alta directa desde una sugerencia. Un SKU desconocido responde 200 con aviso.
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddProductRequest  true  "sku y qty (mínimo 1)"
// @Success      200   {object}  dto.AddProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/add [post]
func (h *ChatHandler) Add(c *fiber.Ctx) error {
	id := GetConversationID(c)
	if id == "" {
		return unauthorized(c)
	}
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddBySKU(c.Context(), id, in.SKU, in.Qty)
	if err != nil {
		return writeError(c, h.log, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// Cart godoc
// @Summary      Ver carrito
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartSnapshot
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/cart [get]
func (h *ChatHandler) Cart(c *fiber.Ctx) error {
	id := GetConversationID(c)
	if id == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Cart(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err, "conversación no encontrada")
	}
	return c.JSON(out)
}
