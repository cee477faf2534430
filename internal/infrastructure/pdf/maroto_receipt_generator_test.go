package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/infrastructure/pdf"
)

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:               "3f2b8c1e-1111-4a2b-9c3d-000000000001",
		CreatedAt:        time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC),
		Subtotal:         decimal.RequireFromString("60.00"),
		Tax:              decimal.RequireFromString("9.60"),
		Total:            decimal.RequireFromString("69.60"),
		Paid:             true,
		PaymentMethod:    "tarjeta",
		Email:            "cliente@correo.mx",
		InvoiceRequested: true,
		RFC:              "XAXX010101000",
		Lines: []entity.OrderLine{
			{SKU: "AG1L1", Name: "Agua 1L Bonafont", Quantity: 1, UnitPrice: decimal.RequireFromString("16.00")},
			{SKU: "CO600", Name: "Refresco 600ml Coca-Cola", Quantity: 2, UnitPrice: decimal.RequireFromString("22.00")},
		},
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	g := pdf.NewMarotoReceiptGenerator()

	out, err := g.GenerateReceiptPDF(context.Background(), sampleOrder(), "Abarrotes ShopBot")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateReceiptPDF_SinLineasNiFactura(t *testing.T) {
	order := sampleOrder()
	order.Lines = nil
	order.InvoiceRequested = false
	order.RFC = ""

	out, err := pdf.NewMarotoReceiptGenerator().GenerateReceiptPDF(context.Background(), order, "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateReceiptPDF_PedidoNulo(t *testing.T) {
	_, err := pdf.NewMarotoReceiptGenerator().GenerateReceiptPDF(context.Background(), nil, "x")
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":           "$0.00",
		"9.6":         "$9.60",
		"69.60":       "$69.60",
		"1234.5":      "$1,234.50",
		"1234567.891": "$1,234,567.89",
		"-22":         "-$22.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.FormatMoney(decimal.RequireFromString(in)), in)
	}
}
