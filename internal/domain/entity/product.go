package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/shopbot/internal/domain"
)

// Product representa una entrada del catálogo. Es de solo lectura durante una conversación.
type Product struct {
	SKU      string          // clave única
	Name     string
	Brand    string
	Category string          // clave de categoría (coca, agua, pan...)
	Price    decimal.Decimal // precio de venta
	Cost     decimal.Decimal // costo de adquisición
	Stock    int
}

// MarginAbs devuelve el margen absoluto (precio - costo).
func (p *Product) MarginAbs() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

// MarginRate devuelve el margen relativo al precio; 0 si el precio es 0.
func (p *Product) MarginRate() decimal.Decimal {
	if p.Price.IsZero() {
		return decimal.Zero
	}
	return p.MarginAbs().Div(p.Price)
}

// Validate verifica los invariantes de la entrada (precio y costo no negativos).
func (p *Product) Validate() error {
	if p.SKU == "" || p.Price.IsNegative() || p.Cost.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// DisplayText texto corto para sugerencias: "<nombre> <marca> $<precio>".
func (p *Product) DisplayText() string {
	return p.Name + " " + p.Brand + " $" + p.Price.StringFixed(2)
}
