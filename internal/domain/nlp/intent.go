package nlp

import "strings"

// Intent acción conversacional gruesa detectada en un mensaje.
type Intent string

const (
	IntentCheckout Intent = "checkout"
	IntentShowCart Intent = "show_cart"
	IntentRemove   Intent = "remove"
	IntentInvoice  Intent = "invoice"
	IntentPay      Intent = "pay"
	IntentAdd      Intent = "add"
	IntentUnknown  Intent = "unknown"
)

// IntentClassifier recorre las reglas en orden de prioridad y devuelve la primera
// que coincide: checkout > show_cart > remove > invoice > pay > add > unknown.
// "pagar" gana a "agrega" aunque ambos aparezcan.
type IntentClassifier struct {
	rules []IntentRule
}

// NewIntentClassifier normaliza las palabras clave una sola vez.
func NewIntentClassifier(rules *Rules) *IntentClassifier {
	out := make([]IntentRule, 0, len(rules.Intents))
	for _, r := range rules.Intents {
		kw := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			kw = append(kw, Normalize(k))
		}
		out = append(out, IntentRule{Intent: r.Intent, Keywords: kw, Pattern: r.Pattern})
	}
	return &IntentClassifier{rules: out}
}

// Classify devuelve exactamente una intención.
func (c *IntentClassifier) Classify(text string) Intent {
	q := Normalize(text)
	for _, r := range c.rules {
		if r.Pattern != nil && r.Pattern.MatchString(q) {
			return r.Intent
		}
		for _, k := range r.Keywords {
			if k != "" && strings.Contains(q, k) {
				return r.Intent
			}
		}
	}
	return IntentUnknown
}
