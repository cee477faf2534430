package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/repository"
	"github.com/jhoicas/shopbot/internal/infrastructure/memory"
)

func newCatalog(t *testing.T) *memory.CatalogRepository {
	t.Helper()
	c, err := memory.NewCatalogRepository(memory.SeedProducts())
	require.NoError(t, err)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_SeedCompleto(t *testing.T) {
	c := newCatalog(t)
	all, err := c.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 16)
	assert.Equal(t, "ACE01", all[0].SKU)
	for _, p := range all {
		assert.Equal(t, 100, p.Stock, p.SKU)
	}
}

func TestCatalog_GetBySKU(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	p, err := c.GetBySKU(ctx, "CO600")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Coca-Cola", p.Brand)

	// modificar la copia no altera el catálogo
	p.Price = decimal.NewFromInt(1)
	again, _ := c.GetBySKU(ctx, "CO600")
	assert.Equal(t, "22", again.Price.String())

	missing, err := c.GetBySKU(ctx, "NOPE")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalog_SearchSinMayusculas(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	byBrand, err := c.Search(ctx, repository.FieldBrand, "CASA")
	require.NoError(t, err)
	require.Len(t, byBrand, 2)
	assert.Equal(t, "AG1L2", byBrand[0].SKU)
	assert.Equal(t, "CAF02", byBrand[1].SKU)

	byName, err := c.Search(ctx, repository.FieldName, "refresco")
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	_, err = c.Search(ctx, repository.SearchField("stock"), "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalog_BrandsYCategorias(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	brands, err := c.Brands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 15) // "Casa" aparece dos veces
	assert.Contains(t, brands, "Head&Shoulders")

	ok, err := c.CategoryExists(ctx, "cafe")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.CategoryExists(ctx, "carne")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalog_RechazaInvalidosYDuplicados(t *testing.T) {
	bad := &entity.Product{SKU: "X", Price: decimal.NewFromInt(-1)}
	_, err := memory.NewCatalogRepository([]*entity.Product{bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p := &entity.Product{SKU: "X", Price: decimal.NewFromInt(1)}
	_, err = memory.NewCatalogRepository([]*entity.Product{p, p})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func sampleOrder(id string) *entity.Order {
	return &entity.Order{
		ID:    id,
		Total: decimal.RequireFromString("69.60"),
		Lines: []entity.OrderLine{
			{OrderID: id, SKU: "CO600", Quantity: 2, UnitPrice: decimal.RequireFromString("22")},
		},
	}
}

func TestOrders_RunOrderPublicaAlTerminar(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	err := repo.RunOrder(ctx, func(tx repository.OrderRepository) error {
		require.NoError(t, tx.Create(ctx, sampleOrder("o-1")))
		// dentro de la unidad todavía no es visible fuera
		outside, _ := repo.GetByID(ctx, "o-1")
		assert.Nil(t, outside)
		return nil
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "o-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "69.6", got.Total.String())
}

func TestOrders_RunOrderDescartaSiFalla(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.RunOrder(ctx, func(tx repository.OrderRepository) error {
		require.NoError(t, tx.Create(ctx, sampleOrder("o-2")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, "o-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrders_Duplicado(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, sampleOrder("o-3")))
	assert.ErrorIs(t, repo.Create(ctx, sampleOrder("o-3")), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, &entity.Order{}), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestConversations_GuardaCopias(t *testing.T) {
	repo := memory.NewConversationRepository()
	ctx := context.Background()

	st := entity.NewConversationState("c-1")
	st.Cart.Add("CO600", 2)
	require.NoError(t, repo.Save(ctx, st))

	st.Cart.Add("CO600", 5)
	got, err := repo.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Cart["CO600"])

	require.NoError(t, repo.Delete(ctx, "c-1"))
	got, err = repo.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Save(ctx, &entity.ConversationState{}), domain.ErrInvalidInput)
}
