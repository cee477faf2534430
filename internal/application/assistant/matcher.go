package assistant

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/nlp"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

const minTokenLen = 3

// ProductMatcher resuelve texto libre (y una categoría opcional) a productos del catálogo.
type ProductMatcher struct {
	catalog repository.CatalogRepository
	rules   *nlp.Rules
}

// NewProductMatcher construye el buscador con las tablas de alias inyectadas.
func NewProductMatcher(catalog repository.CatalogRepository, rules *nlp.Rules) *ProductMatcher {
	return &ProductMatcher{catalog: catalog, rules: rules}
}

// Find une dos pasadas, sin duplicados por SKU:
//  1. alias: si una frase alias aparece en el texto, todos los productos cuya
//     categoría o nombre contiene la clave de esa categoría;
//  2. tokens: cada token alfanumérico de 3+ caracteres contra nombre, marca o categoría.
//
// Con category != "" ambas pasadas se limitan a esa categoría. Sin coincidencias
// devuelve un slice vacío, no un error.
func (m *ProductMatcher) Find(ctx context.Context, text, category string) ([]*entity.Product, error) {
	q := nlp.Normalize(text)
	hits := make(map[string]*entity.Product)

	for _, alias := range m.rules.Aliases {
		if category != "" && alias.Category != category {
			continue
		}
		if !containsAnyPhrase(q, alias.Phrases) {
			continue
		}
		for _, field := range []repository.SearchField{repository.FieldCategory, repository.FieldName} {
			list, err := m.catalog.Search(ctx, field, alias.Category)
			if err != nil {
				return nil, fmt.Errorf("buscar alias %q: %w", alias.Category, err)
			}
			collect(hits, list, "")
		}
	}

	for _, tok := range tokenPattern.FindAllString(text, -1) {
		if utf8.RuneCountInString(tok) < minTokenLen {
			continue
		}
		for _, field := range []repository.SearchField{repository.FieldName, repository.FieldBrand, repository.FieldCategory} {
			list, err := m.catalog.Search(ctx, field, tok)
			if err != nil {
				return nil, fmt.Errorf("buscar token %q: %w", tok, err)
			}
			collect(hits, list, category)
		}
	}

	out := make([]*entity.Product, 0, len(hits))
	for _, p := range hits {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func containsAnyPhrase(normalized string, phrases []string) bool {
	for _, ph := range phrases {
		if n := nlp.Normalize(ph); n != "" && strings.Contains(normalized, n) {
			return true
		}
	}
	return false
}

// collect agrega list a hits; con category != "" descarta productos de otra categoría.
func collect(hits map[string]*entity.Product, list []*entity.Product, category string) {
	for _, p := range list {
		if category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(category)) {
			continue
		}
		hits[p.SKU] = p
	}
}
