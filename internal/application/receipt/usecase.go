package receipt

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/shopbot/internal/application/dto"
	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

// UseCase consulta pedidos cerrados y genera su ticket en PDF.
type UseCase struct {
	orders    repository.OrderRepository
	generator PDFGenerator
	storeName string
}

// NewUseCase construye el caso de uso. generator puede ser nil si solo se consulta JSON.
func NewUseCase(orders repository.OrderRepository, generator PDFGenerator, storeName string) *UseCase {
	return &UseCase{orders: orders, generator: generator, storeName: storeName}
}

// GetOrder devuelve el pedido con sus líneas, o domain.ErrNotFound.
func (uc *UseCase) GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// DownloadReceiptPDF genera el ticket del pedido.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el pedido no existe.
func (uc *UseCase) DownloadReceiptPDF(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if uc.generator == nil {
		return nil, "", fmt.Errorf("recibo: sin generador de PDF: %w", domain.ErrConflict)
	}
	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order, uc.storeName)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("ticket_%s.pdf", shortID(order.ID)), nil
}

func (uc *UseCase) load(ctx context.Context, orderID string) (*entity.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("recibo: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			SKU:       l.SKU,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal(),
		})
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		CreatedAt:        o.CreatedAt,
		Subtotal:         o.Subtotal,
		Tax:              o.Tax,
		Total:            o.Total,
		Paid:             o.Paid,
		PaymentMethod:    o.PaymentMethod,
		Email:            o.Email,
		InvoiceRequested: o.InvoiceRequested,
		RFC:              o.RFC,
		Lines:            lines,
	}
}

// shortID primeros 8 caracteres del uuid, suficiente para el nombre de archivo.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
