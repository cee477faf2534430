package nlp

// CategoryDetector resuelve la categoría mencionada en un mensaje.
type CategoryDetector struct {
	table []CategoryPattern
}

// NewCategoryDetector construye el detector con la tabla ordenada de patrones.
func NewCategoryDetector(rules *Rules) *CategoryDetector {
	return &CategoryDetector{table: rules.Categories}
}

// Detect devuelve la primera categoría (en orden de tabla) con algún patrón que coincida.
func (d *CategoryDetector) Detect(text string) (string, bool) {
	q := Normalize(text)
	for _, entry := range d.table {
		for _, p := range entry.Patterns {
			if p.MatchString(q) {
				return entry.Category, true
			}
		}
	}
	return "", false
}
