package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/shopbot/internal/domain/pricing"
)

var iva = decimal.RequireFromString("0.16")

// Carrito {CO600:2, AG1L1:1}: 2x22.00 + 16.00 = 60.00; IVA 9.60; total 69.60.
func TestCalculateTotals_CarritoDeReferencia(t *testing.T) {
	subtotal := pricing.LineTotal(decimal.RequireFromString("22.00"), 2).
		Add(pricing.LineTotal(decimal.RequireFromString("16.00"), 1))

	got := pricing.CalculateTotals(subtotal, iva)

	assert.Equal(t, "60.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "9.60", got.Tax.StringFixed(2))
	assert.Equal(t, "69.60", got.Total.StringFixed(2))
}

func TestCalculateTotals_RedondeaADosDecimales(t *testing.T) {
	// 19.99 * 0.16 = 3.1984 -> 3.20
	got := pricing.CalculateTotals(decimal.RequireFromString("19.99"), iva)
	assert.True(t, got.Tax.Equal(decimal.RequireFromString("3.20")), got.Tax.String())
	assert.True(t, got.Total.Equal(decimal.RequireFromString("23.19")), got.Total.String())
	assert.LessOrEqual(t, -got.Tax.Exponent(), int32(2))

	// 0.03125 * 0.16 = 0.005 -> 0.01 (mitad hacia arriba)
	got = pricing.CalculateTotals(decimal.RequireFromString("0.03125"), iva)
	assert.Equal(t, "0.01", got.Tax.StringFixed(2))
}

func TestCalculateTotals_CarritoVacio(t *testing.T) {
	got := pricing.CalculateTotals(decimal.Zero, iva)
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Total.IsZero())
}
