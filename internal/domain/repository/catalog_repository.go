package repository

import (
	"context"

	"github.com/jhoicas/shopbot/internal/domain/entity"
)

// SearchField campo del catálogo sobre el que se filtra por subcadena.
type SearchField string

const (
	FieldName     SearchField = "name"
	FieldBrand    SearchField = "brand"
	FieldCategory SearchField = "category"
)

// CatalogRepository puerto de lectura del catálogo (DIP). El núcleo nunca escribe en él.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// GetBySKU devuelve (nil, nil) si el SKU no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// Search filtra por subcadena sin distinguir mayúsculas sobre el campo indicado.
	Search(ctx context.Context, field SearchField, term string) ([]*entity.Product, error)
	// Brands devuelve las marcas distintas del catálogo.
	Brands(ctx context.Context) ([]string, error)
	// CategoryExists indica si alguna entrada tiene una categoría que contiene key.
	CategoryExists(ctx context.Context, key string) (bool, error)
}
