package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopbot/internal/application/assistant"
	"github.com/jhoicas/shopbot/internal/application/receipt"
	"github.com/jhoicas/shopbot/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Dialogue *assistant.DialogueUseCase
	Receipts *receipt.UseCase
	Token    TokenConfig
	Log      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Conversaciones (alta pública; el token devuelto protege el resto)
	convHandler := NewConversationHandler(deps.Dialogue, deps.Token, log)
	api.Post("/conversations", convHandler.Start)

	// Pedidos y tickets: el uuid del pedido funciona como enlace
	receiptHandler := NewReceiptHandler(deps.Receipts, log)
	api.Get("/orders/:id", receiptHandler.GetOrder)
	app.Get("/recibo/:id", receiptHandler.DownloadPDF)

	// Rutas protegidas (requieren Bearer Token de conversación)
	protected := api.Group("/", ConversationAuth(deps.Token.Secret))
	protected.Post("/conversations/reset", convHandler.Reset)

	chatHandler := NewChatHandler(deps.Dialogue, log)
	protected.Post("/message", chatHandler.Message)
	protected.Post("/add", chatHandler.Add)
	protected.Get("/cart", chatHandler.Cart)
}
