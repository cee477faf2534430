// Package nlp contiene la comprensión determinista de mensajes: normalización,
// detección de categoría, marca, cantidad e intención mediante tablas de patrones.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize pasa a minúsculas y elimina acentos (marcas diacríticas combinantes).
// "Café Nescafé" -> "cafe nescafe".
func Normalize(s string) string {
	lower := strings.ToLower(s)
	// El transformer guarda estado; se construye por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}
