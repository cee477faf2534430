package nlp

import "regexp"

// CategoryPattern asocia una categoría con sus patrones (se evalúan sobre texto normalizado).
type CategoryPattern struct {
	Category string
	Patterns []*regexp.Regexp
}

// CategoryAlias frases que, contenidas en el mensaje, apuntan a una categoría.
type CategoryAlias struct {
	Category string
	Phrases  []string
}

// Complement frase de producto complementario sugerida para una categoría.
type Complement struct {
	Category string
	Phrase   string
}

// IntentRule regla de intención: coincide si alguna palabra clave está contenida
// en el texto normalizado o si Pattern coincide.
type IntentRule struct {
	Intent   Intent
	Keywords []string
	Pattern  *regexp.Regexp
}

// Rules tablas inmutables que alimentan detectores, buscador y recomendador.
// El orden de Categories e Intents es el criterio de desempate.
type Rules struct {
	Categories     []CategoryPattern
	Aliases        []CategoryAlias
	Complements    []Complement
	Intents        []IntentRule
	Affirmatives   []string
	PaymentMethods []string
}

// AliasesFor devuelve las frases alias de una categoría.
func (r *Rules) AliasesFor(category string) []string {
	for _, a := range r.Aliases {
		if a.Category == category {
			return a.Phrases
		}
	}
	return nil
}

// ComplementFor devuelve la frase complementaria de la categoría.
func (r *Rules) ComplementFor(category string) (string, bool) {
	for _, c := range r.Complements {
		if c.Category == category {
			return c.Phrase, true
		}
	}
	return "", false
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// DefaultRules tablas de la tienda de abarrotes. Las últimas categorías no se
// venden; existen para poder responder "no manejamos la categoría".
func DefaultRules() *Rules {
	return &Rules{
		Categories: []CategoryPattern{
			{"coca", patterns(`\bcoca(\s|-)?cola\b`, `\brefresco\s*coca\b`, `\bcoca\s*600\b`, `\bcocas?\b`)},
			{"pepsi", patterns(`\bpepsis?\b`, `\brefresco\s*pepsi\b`)},
			{"agua", patterns(`\baguas?\b`, `\bbonafont\b`, `\bepura\b`, `\bciel\b`)},
			{"pan", patterns(`\bpan\b`, `\bbimbo\b`)},
			{"leche", patterns(`\bleches?\b`, `\blala\b`, `\balpura\b`)},
			{"huevo", patterns(`\bhuevos?\b`, `\bdocena\b`)},
			{"atun", patterns(`\batun\b`, `\bdolores\b`, `\btuni\b`)},
			{"aceite", patterns(`\baceites?\b`)},
			{"cafe", patterns(`\bcafe\b`, `\bnescafe\b`, `\bsoluble\b`)},
			{"harina", patterns(`\bmaseca\b`, `\bharina\b`)},
			{"jabonzote", patterns(`\bzote\b`, `\bjabon\b`)},
			{"shampoo", patterns(`\bshampoo\b`, `\bhead\s*&?\s*shoulders\b`, `\bh&s\b`)},
			{"papas", patterns(`\bpapas\b`, `\bsabritas\b`)},
			{"oreo", patterns(`\boreos?\b`, `\bgalletas\b`)},
			{"carne", patterns(`\bcarnes?\b`, `\bbistec\b`, `\bmolida\b`)},
			{"pollo", patterns(`\bpollos?\b`, `\bpechuga\b`)},
			{"cerveza", patterns(`\bcervezas?\b`, `\bcaguama\b`)},
			{"tortilla", patterns(`\btortillas?\b`)},
			{"queso", patterns(`\bquesos?\b`)},
		},
		Aliases: []CategoryAlias{
			{"coca", []string{"coca cola", "coca-cola", "coca600", "coca 600", "refresco coca", "coca"}},
			{"pepsi", []string{"pepsi", "refresco pepsi"}},
			{"agua", []string{"agua", "bonafont", "epura", "ciel"}},
			{"pan", []string{"pan bimbo", "pan blanco", "bimbo"}},
			{"leche", []string{"leche lala", "leche alpura", "leche"}},
			{"huevo", []string{"huevo", "docena huevo"}},
			{"atun", []string{"atun", "atun dolores", "atun tuni"}},
			{"aceite", []string{"aceite", "aceite 1l"}},
			{"cafe", []string{"cafe", "nescafe", "cafe soluble"}},
			{"harina", []string{"maseca", "harina"}},
			{"jabonzote", []string{"zote", "jabon zote"}},
			{"shampoo", []string{"shampoo", "head shoulders", "h&s"}},
			{"papas", []string{"sabritas", "papas fritas"}},
			{"oreo", []string{"oreo", "galletas oreo", "galletas"}},
		},
		Complements: []Complement{
			{"leche", "galletas oreo"},
			{"pan", "mantequilla"},
			{"cafe", "crema en polvo"},
			{"agua", "papas"},
			{"huevo", "aceite"},
			{"harina", "aceite"},
			{"coca", "papas"},
			{"pepsi", "papas"},
		},
		Intents: []IntentRule{
			{Intent: IntentCheckout, Keywords: []string{"pagar", "cobrar", "finalizar", "terminar", "checkout"}},
			{Intent: IntentShowCart, Keywords: []string{"carrito", "pedido", "ver carrito"}},
			{Intent: IntentRemove, Keywords: []string{"quitar", "quita", "eliminar", "elimina", "remueve"}},
			{Intent: IntentInvoice, Keywords: []string{"factura", "rfc"}},
			{Intent: IntentPay, Keywords: []string{"efectivo", "tarjeta", "transferencia", "oxxo"}},
			{
				Intent:   IntentAdd,
				Keywords: []string{"agrega", "añade", "dame", "quiero", "llevo", "pon", "vende", "ofrece"},
				Pattern:  quantityPattern,
			},
		},
		Affirmatives:   []string{"si", "s", "yes", "y", "claro", "ok", "sale"},
		PaymentMethods: []string{"efectivo", "tarjeta", "transferencia"},
	}
}
