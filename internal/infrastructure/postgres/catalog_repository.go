package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

const productColumns = `sku, name, brand, category, price, cost, stock`

// searchColumns lista blanca de columnas para Search; nunca se interpola texto del usuario.
var searchColumns = map[repository.SearchField]string{
	repository.FieldName:     "name",
	repository.FieldBrand:    "brand",
	repository.FieldCategory: "category",
}

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListAll devuelve todo el catálogo ordenado por SKU.
func (r *CatalogRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

// GetBySKU obtiene un producto; (nil, nil) si no existe.
func (r *CatalogRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Search filtra con ILIKE sobre la columna indicada.
func (r *CatalogRepo) Search(ctx context.Context, field repository.SearchField, term string) ([]*entity.Product, error) {
	col, ok := searchColumns[field]
	if !ok {
		return nil, fmt.Errorf("campo de búsqueda %q: %w", field, domain.ErrInvalidInput)
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + col + ` ILIKE $1 ORDER BY sku`
	rows, err := r.q.Query(ctx, query, containsPattern(term))
	if err != nil {
		return nil, fmt.Errorf("search products by %s: %w", col, err)
	}
	return scanProducts(rows)
}

// Brands devuelve las marcas distintas, ordenadas.
func (r *CatalogRepo) Brands(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT brand FROM products WHERE brand <> '' ORDER BY brand`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// CategoryExists indica si alguna categoría contiene key.
func (r *CatalogRepo) CategoryExists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE category ILIKE $1)`,
		containsPattern(key),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return exists, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.SKU, &p.Name, &p.Brand, &p.Category, &p.Price, &p.Cost, &p.Stock); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	out := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}
