package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// quantityPattern: número de 1 o 2 dígitos aislado, opcionalmente precedido por
// x / por / de. Dígitos pegados a letras u otros dígitos (coca600, ag1l1) no cuentan.
var quantityPattern = regexp.MustCompile(`(?:^|[^a-z0-9])(?:(?:x|por|de)\s*)?(\d{1,2})x?(?:[^a-z0-9]|$)`)

var brandPattern = regexp.MustCompile(`marca\s+([a-z0-9\-]+)`)

// ExtractQuantity devuelve la primera cantidad del mensaje; 1 si no hay.
func ExtractQuantity(text string) int {
	m := quantityPattern.FindStringSubmatch(Normalize(text))
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// DetectBrand busca primero cualquier marca conocida contenida en el texto; si no
// hay, toma el token que sigue a "marca". El segundo caso puede ser una marca que
// no existe: el llamador valida con IsKnownBrand.
func DetectBrand(text string, knownBrands []string) (string, bool) {
	q := Normalize(text)
	for _, b := range knownBrands {
		nb := Normalize(b)
		if nb != "" && strings.Contains(q, nb) {
			return b, true
		}
	}
	if m := brandPattern.FindStringSubmatch(q); m != nil {
		return m[1], true
	}
	return "", false
}

// IsKnownBrand compara sin acentos ni mayúsculas contra las marcas del catálogo.
func IsKnownBrand(name string, knownBrands []string) bool {
	n := Normalize(strings.TrimSpace(name))
	if n == "" {
		return false
	}
	for _, b := range knownBrands {
		if Normalize(b) == n {
			return true
		}
	}
	return false
}

// FirstWord devuelve la primera palabra normalizada (sin signos de puntuación).
func FirstWord(text string) string {
	words := strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// IsAffirmative indica si el mensaje empieza con un token afirmativo.
func IsAffirmative(text string, affirmatives []string) bool {
	w := FirstWord(text)
	for _, a := range affirmatives {
		if w == Normalize(a) {
			return true
		}
	}
	return false
}

// DetectPaymentMethod devuelve el primer método de pago contenido en el mensaje.
func DetectPaymentMethod(text string, methods []string) (string, bool) {
	q := Normalize(text)
	for _, m := range methods {
		if strings.Contains(q, Normalize(m)) {
			return m, true
		}
	}
	return "", false
}
