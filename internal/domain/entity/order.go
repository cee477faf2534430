package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido confirmado al cerrar el checkout.
// Se crea junto con sus líneas en una sola transacción.
type Order struct {
	ID               string
	CreatedAt        time.Time
	Subtotal         decimal.Decimal
	Tax              decimal.Decimal // IVA
	Total            decimal.Decimal
	Paid             bool
	PaymentMethod    string
	Email            string
	InvoiceRequested bool
	RFC              string
	Lines            []OrderLine
}

// OrderLine es la foto de una línea del carrito al momento del cierre.
// UnitPrice no se recalcula desde el catálogo después de creada.
type OrderLine struct {
	OrderID   string
	SKU       string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal devuelve cantidad x precio unitario.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
