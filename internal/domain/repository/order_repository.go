package repository

import (
	"context"

	"github.com/jhoicas/shopbot/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos y sus líneas.
type OrderRepository interface {
	// Create persiste la cabecera y todas las líneas de order. Debe ejecutarse
	// dentro de una unidad atómica (ver TxRunner en la capa de aplicación).
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve (nil, nil) si el pedido no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
}
