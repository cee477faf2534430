package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/nlp"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

// Recommender ordena productos por margen y elige el complemento de cada alta.
type Recommender struct {
	catalog repository.CatalogRepository
	matcher *ProductMatcher
	rules   *nlp.Rules
}

// NewRecommender construye el motor de recomendación.
func NewRecommender(catalog repository.CatalogRepository, matcher *ProductMatcher, rules *nlp.Rules) *Recommender {
	return &Recommender{catalog: catalog, matcher: matcher, rules: rules}
}

// higherMargin ordena por margen relativo, luego absoluto (ambos descendentes) y
// por último SKU ascendente para que el resultado sea reproducible.
func higherMargin(a, b *entity.Product) bool {
	if c := a.MarginRate().Cmp(b.MarginRate()); c != 0 {
		return c > 0
	}
	if c := a.MarginAbs().Cmp(b.MarginAbs()); c != 0 {
		return c > 0
	}
	return a.SKU < b.SKU
}

// SortByMargin ordena list en sitio, el de mayor margen primero.
func SortByMargin(list []*entity.Product) {
	sort.SliceStable(list, func(i, j int) bool { return higherMargin(list[i], list[j]) })
}

// BestMatch devuelve el producto de mayor margen; nil si list está vacío.
func BestMatch(list []*entity.Product) *entity.Product {
	var best *entity.Product
	for _, p := range list {
		if best == nil || higherMargin(p, best) {
			best = p
		}
	}
	return best
}

// TopByMargin devuelve hasta n productos (de la categoría, si se indica) ordenados por margen.
func (r *Recommender) TopByMargin(ctx context.Context, n int, category string) ([]*entity.Product, error) {
	if n <= 0 {
		return []*entity.Product{}, nil
	}
	list, err := r.ranked(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(list) > n {
		list = list[:n]
	}
	return list, nil
}

func (r *Recommender) ranked(ctx context.Context, category string) ([]*entity.Product, error) {
	var (
		list []*entity.Product
		err  error
	)
	if category == "" {
		list, err = r.catalog.ListAll(ctx)
	} else {
		list, err = r.catalog.Search(ctx, repository.FieldCategory, category)
	}
	if err != nil {
		return nil, fmt.Errorf("ranking por margen: %w", err)
	}
	out := make([]*entity.Product, len(list))
	copy(out, list)
	SortByMargin(out)
	return out, nil
}

// Complement elige un único producto para sugerir junto al recién agregado:
//  1. el siguiente de mayor margen en la misma categoría;
//  2. la frase de la tabla de complementos (por categoría, o la primera clave
//     presente en el texto si no hubo categoría) resuelta con el buscador;
//  3. el de mayor margen de la categoría, o del catálogo completo.
//
// Solo devuelve nil si el catálogo está vacío.
func (r *Recommender) Complement(ctx context.Context, added *entity.Product, category, text string) (*entity.Product, error) {
	if category != "" {
		pool, err := r.ranked(ctx, category)
		if err != nil {
			return nil, err
		}
		for _, p := range pool {
			if p.SKU != added.SKU {
				return p, nil
			}
		}
	}

	key := category
	if key == "" {
		key = r.complementKeyIn(text)
	}
	if phrase, ok := r.rules.ComplementFor(key); ok {
		found, err := r.matcher.Find(ctx, phrase, "")
		if err != nil {
			return nil, err
		}
		candidates := make([]*entity.Product, 0, len(found))
		for _, p := range found {
			if p.SKU != added.SKU {
				candidates = append(candidates, p)
			}
		}
		if best := BestMatch(candidates); best != nil {
			return best, nil
		}
	}

	if category != "" {
		top, err := r.TopByMargin(ctx, 1, category)
		if err != nil {
			return nil, err
		}
		if len(top) > 0 {
			return top[0], nil
		}
	}
	top, err := r.TopByMargin(ctx, 1, "")
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, nil
	}
	return top[0], nil
}

func (r *Recommender) complementKeyIn(text string) string {
	q := nlp.Normalize(text)
	for _, c := range r.rules.Complements {
		if strings.Contains(q, c.Category) {
			return c.Category
		}
	}
	return ""
}
