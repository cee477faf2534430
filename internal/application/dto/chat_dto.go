package dto

import "github.com/shopspring/decimal"

// MessageRequest body para POST /api/message.
type MessageRequest struct {
	Message string `json:"message"`
}

// AddProductRequest body para POST /api/add (alta directa por SKU).
type AddProductRequest struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

// Suggestion producto sugerido al cliente.
type Suggestion struct {
	SKU  string `json:"sku"`
	Text string `json:"text"`
}

// CartLineResponse línea del carrito con precio vigente del catálogo.
type CartLineResponse struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartSnapshot foto del carrito con totales (IVA incluido).
type CartSnapshot struct {
	Lines    []CartLineResponse `json:"lines"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Tax      decimal.Decimal    `json:"tax"`
	Total    decimal.Decimal    `json:"total"`
}

// MessageResponse respuesta de un turno de conversación.
type MessageResponse struct {
	Reply       string       `json:"reply"`
	Stage       string       `json:"stage"`
	Cart        CartSnapshot `json:"cart"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	OrderID     string       `json:"order_id,omitempty"`
}

// AddProductResponse respuesta del alta directa.
type AddProductResponse struct {
	Reply string       `json:"reply"`
	Cart  CartSnapshot `json:"cart"`
}

// ConversationResponse conversación recién iniciada. Token solo se llena en la capa HTTP.
type ConversationResponse struct {
	ConversationID string       `json:"conversation_id"`
	Token          string       `json:"token,omitempty"`
	Stage          string       `json:"stage"`
	Cart           CartSnapshot `json:"cart"`
}
