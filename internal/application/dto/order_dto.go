package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineResponse línea de pedido con el precio congelado al cierre.
type OrderLineResponse struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse pedido para GET /api/orders/:id (recibo).
type OrderResponse struct {
	ID               string              `json:"id"`
	CreatedAt        time.Time           `json:"created_at"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	Tax              decimal.Decimal     `json:"tax"`
	Total            decimal.Decimal     `json:"total"`
	Paid             bool                `json:"paid"`
	PaymentMethod    string              `json:"payment_method"`
	Email            string              `json:"email"`
	InvoiceRequested bool                `json:"invoice_requested"`
	RFC              string              `json:"rfc,omitempty"`
	Lines            []OrderLineResponse `json:"lines"`
}
