package pricing

import "github.com/shopspring/decimal"

// Totals montos de un carrito o pedido, redondeados a 2 decimales.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineTotal precio unitario x cantidad.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateTotals aplica la tasa única de IVA (servicio de dominio).
// Tax = Subtotal * rate y Total = Subtotal + Tax, ambos redondeados a 2 decimales
// (mitad lejos de cero).
func CalculateTotals(subtotal, taxRate decimal.Decimal) Totals {
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal.Round(2),
		Tax:      tax,
		Total:    subtotal.Add(tax).Round(2),
	}
}
