package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos y líneas sobre PostgreSQL. Create debe correr dentro de
// TxRunner.RunOrder para que cabecera y líneas queden juntas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera y luego cada línea.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, created_at, subtotal, tax, total, paid, payment_method, email, invoice_requested, rfc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		order.ID, order.CreatedAt, order.Subtotal, order.Tax, order.Total, order.Paid,
		order.PaymentMethod, order.Email, order.InvoiceRequested, order.RFC,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for i, l := range order.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (order_id, line_no, sku, name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, i+1, l.SKU, l.Name, l.Quantity, l.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order item %s: %w", l.SKU, err)
		}
	}
	return nil
}

// GetByID obtiene el pedido con sus líneas; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(ctx, `
		SELECT id, created_at, subtotal, tax, total, paid, payment_method, email, invoice_requested, rfc
		FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.CreatedAt, &o.Subtotal, &o.Tax, &o.Total, &o.Paid,
		&o.PaymentMethod, &o.Email, &o.InvoiceRequested, &o.RFC)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT order_id, sku, name, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY line_no`, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	o.Lines = make([]entity.OrderLine, 0)
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.OrderID, &l.SKU, &l.Name, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return &o, nil
}
