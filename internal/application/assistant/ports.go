package assistant

import (
	"context"

	"github.com/jhoicas/shopbot/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una unidad atómica: la cabecera del pedido y
// todas sus líneas se guardan juntas o no se guarda nada.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
