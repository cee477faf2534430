package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopbot/internal/application/assistant"
	"github.com/jhoicas/shopbot/pkg/jwt"
	"github.com/jhoicas/shopbot/pkg/logger"
)

// TokenConfig parámetros para firmar tokens de conversación.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// ConversationHandler alta y reinicio de conversaciones.
type ConversationHandler struct {
	uc    *assistant.DialogueUseCase
	token TokenConfig
	log   *logger.Logger
}

// NewConversationHandler construye el handler.
func NewConversationHandler(uc *assistant.DialogueUseCase, token TokenConfig, log *logger.Logger) *ConversationHandler {
	return &ConversationHandler{uc: uc, token: token, log: log}
}

// Start godoc
// @Summary      Iniciar conversación
// @Description  Crea una conversación vacía y devuelve el token que la identifica en las demás rutas.
// @Tags         conversations
// @Produce      json
// @Success      201  {object}  dto.ConversationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/conversations [post]
func (h *ConversationHandler) Start(c *fiber.Ctx) error {
	conv, err := h.uc.Start(c.Context())
	if err != nil {
		return writeError(c, h.log, err, "conversación no encontrada")
	}
	tok, err := jwt.Generate(h.token.Secret, conv.ConversationID, h.token.Issuer, h.token.ExpMinutes)
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	conv.Token = tok
	return c.Status(fiber.StatusCreated).JSON(conv)
}

// Reset godoc
// @Summary      Reiniciar conversación
// @Description  Vacía el carrito y regresa la conversación a la etapa chat.
// @Tags         conversations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConversationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/conversations/reset [post]
func (h *ConversationHandler) Reset(c *fiber.Ctx) error {
	id := GetConversationID(c)
	if id == "" {
		return unauthorized(c)
	}
	conv, err := h.uc.Reset(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err, "conversación no encontrada")
	}
	return c.JSON(conv)
}
