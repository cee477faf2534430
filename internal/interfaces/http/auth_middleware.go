package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopbot/internal/application/dto"
	"github.com/jhoicas/shopbot/pkg/jwt"
)

// LocalConversationID key en c.Locals para el ID de conversación del token.
const LocalConversationID = "conversation_id"

// ConversationAuth valida el Bearer Token de conversación y deja su ID en c.Locals.
func ConversationAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		conversationID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalConversationID, conversationID)
		return c.Next()
	}
}

// GetConversationID devuelve el ID de conversación (después de ConversationAuth).
func GetConversationID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalConversationID).(string)
	return s
}
