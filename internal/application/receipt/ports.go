package receipt

import (
	"context"

	"github.com/jhoicas/shopbot/internal/domain/entity"
)

// PDFGenerator puerto de salida para la representación gráfica del ticket.
type PDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, storeName string) ([]byte, error)
}
