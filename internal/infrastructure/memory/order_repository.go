package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

// OrderRepository pedidos en memoria. También implementa assistant.OrderTxRunner:
// RunOrder acumula lo que fn crea y lo publica de una vez solo si fn no falla.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]entity.Order)}
}

func (r *OrderRepository) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(order)
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(&o), nil
}

// RunOrder ejecuta fn con un repositorio temporal. Todo o nada.
func (r *OrderRepository) RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	staged := &stagedOrders{}
	if err := fn(staged); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range staged.pending {
		if _, dup := r.orders[o.ID]; dup {
			return fmt.Errorf("pedido %s: %w", o.ID, domain.ErrDuplicate)
		}
	}
	for _, o := range staged.pending {
		if err := r.insert(o); err != nil {
			return err
		}
	}
	return nil
}

// insert requiere el lock de escritura tomado.
func (r *OrderRepository) insert(order *entity.Order) error {
	if order == nil || order.ID == "" {
		return domain.ErrInvalidInput
	}
	if _, dup := r.orders[order.ID]; dup {
		return fmt.Errorf("pedido %s: %w", order.ID, domain.ErrDuplicate)
	}
	r.orders[order.ID] = *cloneOrder(order)
	return nil
}

// stagedOrders repositorio de una "transacción": nada es visible hasta el commit.
type stagedOrders struct {
	pending []*entity.Order
}

func (s *stagedOrders) Create(_ context.Context, order *entity.Order) error {
	if order == nil || order.ID == "" {
		return domain.ErrInvalidInput
	}
	s.pending = append(s.pending, cloneOrder(order))
	return nil
}

func (s *stagedOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for _, o := range s.pending {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Lines = append([]entity.OrderLine(nil), o.Lines...)
	return &cp
}
