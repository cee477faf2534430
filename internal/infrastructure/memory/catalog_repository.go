// Package memory implementa los repositorios en memoria: catálogo, pedidos y
// conversaciones. Sirve para STORAGE_DRIVER=memory y para las pruebas.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

// CatalogRepository catálogo de solo lectura guardado en memoria.
type CatalogRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository carga products validando cada uno. SKUs repetidos son error.
func NewCatalogRepository(products []*entity.Product) (*CatalogRepository, error) {
	r := &CatalogRepository{products: make(map[string]entity.Product, len(products))}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.products[p.SKU]; dup {
			return nil, fmt.Errorf("sku %s: %w", p.SKU, domain.ErrDuplicate)
		}
		r.products[p.SKU] = *p
	}
	return r, nil
}

func (r *CatalogRepository) ListAll(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(entity.Product) bool { return true }), nil
}

func (r *CatalogRepository) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[sku]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *CatalogRepository) Search(_ context.Context, field repository.SearchField, term string) ([]*entity.Product, error) {
	var get func(entity.Product) string
	switch field {
	case repository.FieldName:
		get = func(p entity.Product) string { return p.Name }
	case repository.FieldBrand:
		get = func(p entity.Product) string { return p.Brand }
	case repository.FieldCategory:
		get = func(p entity.Product) string { return p.Category }
	default:
		return nil, fmt.Errorf("campo de búsqueda %q: %w", field, domain.ErrInvalidInput)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(p entity.Product) bool { return containsFold(get(p), term) }), nil
}

func (r *CatalogRepository) Brands(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range r.products {
		if _, ok := seen[p.Brand]; ok || p.Brand == "" {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	sort.Strings(out)
	return out, nil
}

func (r *CatalogRepository) CategoryExists(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if containsFold(p.Category, key) {
			return true, nil
		}
	}
	return false, nil
}

// filter devuelve copias ordenadas por SKU. Requiere el lock de lectura tomado.
func (r *CatalogRepository) filter(keep func(entity.Product) bool) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if keep(p) {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
