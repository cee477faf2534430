package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/shopbot/internal/domain/entity"
)

// SeedProducts catálogo de ejemplo de la tienda (stock 100 en todos).
// Es el mismo que carga la migración 000002 en Postgres.
func SeedProducts() []*entity.Product {
	rows := []struct {
		sku, name, brand, category, price, cost string
	}{
		{"CO600", "Refresco 600ml", "Coca-Cola", "coca", "22.00", "14.00"},
		{"PE600", "Refresco 600ml", "Pepsi", "pepsi", "20.00", "13.00"},
		{"AG1L1", "Agua 1L", "Bonafont", "agua", "16.00", "8.00"},
		{"AG1L2", "Agua 1L", "Casa", "agua", "14.00", "6.00"},
		{"PAN01", "Pan Blanco", "Bimbo", "pan", "48.00", "33.00"},
		{"LEC01", "Leche 1L", "Lala", "leche", "29.00", "22.00"},
		{"HUE01", "Huevo docena", "San Juan", "huevo", "52.00", "41.00"},
		{"ATN01", "Atún 140g", "Dolores", "atun", "21.00", "14.00"},
		{"ACE01", "Aceite 1L", "123", "aceite", "49.00", "34.00"},
		{"CAF01", "Café 200g", "Nescafé", "cafe", "98.00", "64.00"},
		{"CAF02", "Café 200g", "Casa", "cafe", "89.00", "49.00"},
		{"HAR01", "Harina 1kg", "Maseca", "harina", "29.00", "20.00"},
		{"ZOT01", "Jabón 400g", "Zote", "jabonzote", "22.00", "12.00"},
		{"SHA01", "Shampoo 375ml", "Head&Shoulders", "shampoo", "99.00", "66.00"},
		{"PAP01", "Papas 45g", "Sabritas", "papas", "19.00", "10.00"},
		{"ORE01", "Galletas 117g", "Oreo", "oreo", "28.00", "16.00"},
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, &entity.Product{
			SKU:      r.sku,
			Name:     r.name,
			Brand:    r.brand,
			Category: r.category,
			Price:    decimal.RequireFromString(r.price),
			Cost:     decimal.RequireFromString(r.cost),
			Stock:    100,
		})
	}
	return out
}
