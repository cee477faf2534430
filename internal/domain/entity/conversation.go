package entity

import (
	"sort"
	"time"
)

// Stage etapa del diálogo de cierre de compra.
type Stage string

// Etapas de la máquina de estados del checkout.
const (
	StageChat       Stage = "chat"
	StageAskInvoice Stage = "ask_invoice"
	StageAskPayment Stage = "ask_payment"
	StageAskRFC     Stage = "ask_rfc"
	StageAskEmail   Stage = "ask_email"
	StageDone       Stage = "done"
)

// InCheckout indica si la etapa espera una respuesta del diálogo de cierre.
// StageDone no cuenta: después de cerrar se sigue conversando sin volver a StageChat.
func (s Stage) InCheckout() bool {
	switch s {
	case StageAskInvoice, StageAskPayment, StageAskRFC, StageAskEmail:
		return true
	}
	return false
}

// Cart mapea SKU -> cantidad. Las cantidades siempre son positivas.
type Cart map[string]int

// Add suma qty unidades del SKU; cantidades menores a 1 se ajustan a 1.
func (c Cart) Add(sku string, qty int) {
	if qty < 1 {
		qty = 1
	}
	c[sku] += qty
}

// Remove elimina la línea completa del SKU.
func (c Cart) Remove(sku string) bool {
	if _, ok := c[sku]; !ok {
		return false
	}
	delete(c, sku)
	return true
}

// SKUs devuelve los SKUs ordenados.
func (c Cart) SKUs() []string {
	out := make([]string, 0, len(c))
	for sku := range c {
		out = append(out, sku)
	}
	sort.Strings(out)
	return out
}

// Clone copia el carrito.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ConversationState estado de una conversación: etapa, carrito y datos de cierre.
// Pertenece a una sola conversación; se carga y guarda en cada turno.
type ConversationState struct {
	ID               string    `json:"id"`
	Stage            Stage     `json:"stage"`
	Cart             Cart      `json:"cart"`
	InvoiceRequested bool      `json:"invoice_requested"`
	PaymentMethod    *string   `json:"payment_method,omitempty"`
	RFC              *string   `json:"rfc,omitempty"`
	Email            *string   `json:"email,omitempty"`
	LastOrderID      *string   `json:"last_order_id,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewConversationState devuelve el estado inicial de una conversación.
func NewConversationState(id string) *ConversationState {
	return &ConversationState{
		ID:        id,
		Stage:     StageChat,
		Cart:      Cart{},
		UpdatedAt: time.Now(),
	}
}

// Clone copia profunda del estado.
func (s *ConversationState) Clone() *ConversationState {
	out := *s
	out.Cart = s.Cart.Clone()
	out.PaymentMethod = cloneStr(s.PaymentMethod)
	out.RFC = cloneStr(s.RFC)
	out.Email = cloneStr(s.Email)
	out.LastOrderID = cloneStr(s.LastOrderID)
	return &out
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
