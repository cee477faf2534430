package nlp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/shopbot/internal/domain/nlp"
)

var testBrands = []string{"Coca-Cola", "Pepsi", "Bonafont", "Casa", "Bimbo", "Lala", "Nescafé", "Head&Shoulders", "Sabritas", "Oreo"}

// ──────────────────────────────────────────────────────────────────────────────
// Normalize
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "cafe nescafe", nlp.Normalize("Café NESCAFÉ"))
	assert.Equal(t, "atun", nlp.Normalize("Atún"))
	assert.Equal(t, "anade", nlp.Normalize("Añade"))
	assert.Equal(t, "", nlp.Normalize(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryDetector
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDetector_Detect(t *testing.T) {
	d := nlp.NewCategoryDetector(nlp.DefaultRules())

	cases := map[string]string{
		"quiero 2 cocas":         "coca",
		"una Coca-Cola por favor": "coca",
		"dame agua bonafont":     "agua",
		"un Café soluble":        "cafe",
		"atún dolores":           "atun",
		"quiero carne":           "carne",
		"jabón zote":             "jabonzote",
	}
	for msg, want := range cases {
		got, ok := d.Detect(msg)
		assert.True(t, ok, msg)
		assert.Equal(t, want, got, msg)
	}

	_, ok := d.Detect("hola, buenas tardes")
	assert.False(t, ok)
}

func TestCategoryDetector_OrdenDeTablaDesempata(t *testing.T) {
	d := nlp.NewCategoryDetector(nlp.DefaultRules())
	// coca aparece antes que papas en la tabla
	got, ok := d.Detect("papas y coca")
	assert.True(t, ok)
	assert.Equal(t, "coca", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Extractores
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractQuantity(t *testing.T) {
	assert.Equal(t, 2, nlp.ExtractQuantity("quiero 2 cocas"))
	assert.Equal(t, 3, nlp.ExtractQuantity("dame x3 aguas"))
	assert.Equal(t, 4, nlp.ExtractQuantity("ponme por 4"))
	assert.Equal(t, 12, nlp.ExtractQuantity("12 huevos"))
	assert.Equal(t, 5, nlp.ExtractQuantity("5x coca"))
	assert.Equal(t, 1, nlp.ExtractQuantity("quiero agua"))
}

func TestExtractQuantity_NoConfundeCodigos(t *testing.T) {
	assert.Equal(t, 1, nlp.ExtractQuantity("una coca 600"))
	assert.Equal(t, 1, nlp.ExtractQuantity("el producto AG1L1"))
	assert.Equal(t, 1, nlp.ExtractQuantity("coca600"))
	assert.Equal(t, 1, nlp.ExtractQuantity("aceite 1l"))
}

func TestDetectBrand_MarcaConocida(t *testing.T) {
	b, ok := nlp.DetectBrand("quiero cafe nescafe", testBrands)
	assert.True(t, ok)
	assert.Equal(t, "Nescafé", b)
	assert.True(t, nlp.IsKnownBrand(b, testBrands))
}

func TestDetectBrand_FallbackMarcaDesconocida(t *testing.T) {
	b, ok := nlp.DetectBrand("quiero agua marca Peñafiel", testBrands)
	assert.True(t, ok)
	assert.Equal(t, "penafiel", b)
	assert.False(t, nlp.IsKnownBrand(b, testBrands))
}

func TestDetectBrand_SinMarca(t *testing.T) {
	_, ok := nlp.DetectBrand("quiero 2 cocas", testBrands)
	assert.False(t, ok)
}

func TestIsKnownBrand_SinAcentos(t *testing.T) {
	assert.True(t, nlp.IsKnownBrand("nescafe", testBrands))
	assert.True(t, nlp.IsKnownBrand("  LALA ", testBrands))
	assert.False(t, nlp.IsKnownBrand("", testBrands))
}

func TestIsAffirmative(t *testing.T) {
	aff := nlp.DefaultRules().Affirmatives
	assert.True(t, nlp.IsAffirmative("Sí, por favor", aff))
	assert.True(t, nlp.IsAffirmative("si", aff))
	assert.True(t, nlp.IsAffirmative("yes", aff))
	assert.False(t, nlp.IsAffirmative("no gracias", aff))
	assert.False(t, nlp.IsAffirmative("sin factura", aff))
	assert.False(t, nlp.IsAffirmative("", aff))
}

func TestDetectPaymentMethod(t *testing.T) {
	methods := nlp.DefaultRules().PaymentMethods
	m, ok := nlp.DetectPaymentMethod("pago con Tarjeta", methods)
	assert.True(t, ok)
	assert.Equal(t, "tarjeta", m)

	_, ok = nlp.DetectPaymentMethod("con oxxo", methods)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// IntentClassifier
// ──────────────────────────────────────────────────────────────────────────────

func TestIntentClassifier_Prioridad(t *testing.T) {
	c := nlp.NewIntentClassifier(nlp.DefaultRules())

	cases := map[string]nlp.Intent{
		"quiero 2 cocas":               nlp.IntentAdd,
		"pagar":                        nlp.IntentCheckout,
		"agrega una coca y luego pagar": nlp.IntentCheckout,
		"ver carrito":                  nlp.IntentShowCart,
		"quitar la coca del pedido":    nlp.IntentShowCart,
		"quita la coca":                nlp.IntentRemove,
		"necesito factura":             nlp.IntentInvoice,
		"pago en efectivo":             nlp.IntentPay,
		"3":                            nlp.IntentAdd,
		"Añade pan":                    nlp.IntentAdd,
		"hola":                         nlp.IntentUnknown,
	}
	for msg, want := range cases {
		assert.Equal(t, want, c.Classify(msg), msg)
	}
}
