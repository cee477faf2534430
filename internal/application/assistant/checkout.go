package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/nlp"
	"github.com/jhoicas/shopbot/internal/domain/pricing"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

// Textos del diálogo de cierre.
const (
	replyAskPayment    = "¿Método de pago? efectivo, tarjeta o transferencia."
	replyRepromptPay   = "Indica: efectivo, tarjeta o transferencia."
	replyAskRFC        = "Dame tu RFC para la factura."
	replyAskEmail      = "Pago con %s registrado. ¿Correo para enviarte ticket y promociones?"
	replyAskEmailRFC   = "Gracias. ¿Correo para enviar la factura y promociones?"
	replyOrderDone     = "Listo. Ticket %spagados. Descarga: %s"
	receiptPathPattern = "/recibo/%s"
)

// CheckoutTurn resultado de un paso del checkout.
type CheckoutTurn struct {
	Reply string
	Order *entity.Order // solo al cerrar el pedido
}

// Checkout máquina de estados ask_invoice -> ask_payment -> [ask_rfc] -> ask_email -> done.
type Checkout struct {
	catalog repository.CatalogRepository
	tx      OrderTxRunner
	rules   *nlp.Rules
	taxRate decimal.Decimal
	now     func() time.Time
}

// NewCheckout construye la máquina de estados con la tasa de IVA única.
func NewCheckout(catalog repository.CatalogRepository, tx OrderTxRunner, rules *nlp.Rules, taxRate decimal.Decimal) *Checkout {
	return &Checkout{catalog: catalog, tx: tx, rules: rules, taxRate: taxRate, now: time.Now}
}

// ReceiptPath ruta del recibo de un pedido.
func ReceiptPath(orderID string) string {
	return fmt.Sprintf(receiptPathPattern, orderID)
}

// Advance procesa el mensaje según la etapa actual y modifica st.
// Si el registro del pedido falla, st queda intacto y se devuelve el error.
func (c *Checkout) Advance(ctx context.Context, st *entity.ConversationState, text string) (*CheckoutTurn, error) {
	switch st.Stage {
	case entity.StageAskInvoice:
		st.InvoiceRequested = nlp.IsAffirmative(text, c.rules.Affirmatives)
		st.Stage = entity.StageAskPayment
		return &CheckoutTurn{Reply: replyAskPayment}, nil

	case entity.StageAskPayment:
		method, ok := nlp.DetectPaymentMethod(text, c.rules.PaymentMethods)
		if !ok {
			return &CheckoutTurn{Reply: replyRepromptPay}, nil
		}
		st.PaymentMethod = &method
		if st.InvoiceRequested {
			st.Stage = entity.StageAskRFC
			return &CheckoutTurn{Reply: replyAskRFC}, nil
		}
		st.Stage = entity.StageAskEmail
		return &CheckoutTurn{Reply: fmt.Sprintf(replyAskEmail, method)}, nil

	case entity.StageAskRFC:
		rfc := strings.ToUpper(strings.TrimSpace(text))
		st.RFC = &rfc
		st.Stage = entity.StageAskEmail
		return &CheckoutTurn{Reply: replyAskEmailRFC}, nil

	case entity.StageAskEmail:
		email := strings.TrimSpace(text)
		order, err := c.Commit(ctx, st, email)
		if err != nil {
			return nil, err
		}
		st.Email = &email
		st.LastOrderID = &order.ID
		st.Cart = entity.Cart{}
		st.Stage = entity.StageDone
		invoice := ""
		if order.InvoiceRequested {
			invoice = "y factura "
		}
		return &CheckoutTurn{
			Reply: fmt.Sprintf(replyOrderDone, invoice, ReceiptPath(order.ID)),
			Order: order,
		}, nil
	}
	return nil, fmt.Errorf("checkout: etapa %q: %w", st.Stage, domain.ErrConflict)
}

// Commit calcula totales contra el catálogo vigente y registra el pedido con sus
// líneas (precio unitario congelado) en una sola transacción. El pago se da por
// exitoso: Paid siempre es true.
func (c *Checkout) Commit(ctx context.Context, st *entity.ConversationState, email string) (*entity.Order, error) {
	orderID := uuid.New().String()
	subtotal := decimal.Zero
	lines := make([]entity.OrderLine, 0, len(st.Cart))
	for _, sku := range st.Cart.SKUs() {
		p, err := c.catalog.GetBySKU(ctx, sku)
		if err != nil {
			return nil, fmt.Errorf("checkout: leer producto %s: %w", sku, err)
		}
		if p == nil {
			return nil, fmt.Errorf("checkout: producto %s: %w", sku, domain.ErrNotFound)
		}
		qty := st.Cart[sku]
		lines = append(lines, entity.OrderLine{
			OrderID:   orderID,
			SKU:       sku,
			Name:      strings.TrimSpace(p.Name + " " + p.Brand),
			Quantity:  qty,
			UnitPrice: p.Price,
		})
		subtotal = subtotal.Add(pricing.LineTotal(p.Price, qty))
	}
	totals := pricing.CalculateTotals(subtotal, c.taxRate)

	order := &entity.Order{
		ID:               orderID,
		CreatedAt:        c.now(),
		Subtotal:         totals.Subtotal,
		Tax:              totals.Tax,
		Total:            totals.Total,
		Paid:             true,
		PaymentMethod:    deref(st.PaymentMethod),
		Email:            email,
		InvoiceRequested: st.InvoiceRequested,
		RFC:              deref(st.RFC),
		Lines:            lines,
	}
	err := c.tx.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("checkout: registrar pedido: %w", err)
	}
	return order, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
