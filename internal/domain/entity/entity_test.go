package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
)

func product(price, cost string) *entity.Product {
	return &entity.Product{
		SKU:   "X1",
		Name:  "Prueba",
		Brand: "Casa",
		Price: decimal.RequireFromString(price),
		Cost:  decimal.RequireFromString(cost),
	}
}

func TestProduct_Margenes(t *testing.T) {
	p := product("22.00", "14.00")
	assert.True(t, p.MarginAbs().Equal(decimal.RequireFromString("8")))
	assert.Equal(t, "0.3636", p.MarginRate().StringFixed(4))
}

func TestProduct_MarginRateConPrecioCero(t *testing.T) {
	p := product("0", "5.00")
	assert.True(t, p.MarginRate().IsZero())
	assert.True(t, p.MarginAbs().Equal(decimal.RequireFromString("-5")))
}

func TestProduct_Validate(t *testing.T) {
	require.NoError(t, product("1", "0").Validate())
	assert.ErrorIs(t, product("-1", "0").Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, product("1", "-0.5").Validate(), domain.ErrInvalidInput)
}

func TestProduct_DisplayText(t *testing.T) {
	assert.Equal(t, "Prueba Casa $22.00", product("22", "1").DisplayText())
}

func TestCart_AddNuncaDisminuye(t *testing.T) {
	c := entity.Cart{}
	c.Add("CO600", 2)
	c.Add("CO600", 0)
	c.Add("CO600", -5)
	assert.Equal(t, 4, c["CO600"])
}

func TestCart_RemoveEliminaLineaCompleta(t *testing.T) {
	c := entity.Cart{"CO600": 3, "AG1L1": 1}
	assert.True(t, c.Remove("CO600"))
	assert.False(t, c.Remove("CO600"))
	assert.Equal(t, []string{"AG1L1"}, c.SKUs())
}

func TestConversationState_InicialYClone(t *testing.T) {
	s := entity.NewConversationState("c1")
	assert.Equal(t, entity.StageChat, s.Stage)
	assert.Empty(t, s.Cart)
	assert.Nil(t, s.PaymentMethod)

	s.Cart.Add("CO600", 1)
	cp := s.Clone()
	cp.Cart.Add("CO600", 1)
	assert.Equal(t, 1, s.Cart["CO600"])
	assert.Equal(t, 2, cp.Cart["CO600"])
}

func TestStage_InCheckout(t *testing.T) {
	assert.False(t, entity.StageChat.InCheckout())
	assert.True(t, entity.StageAskPayment.InCheckout())
	assert.False(t, entity.StageDone.InCheckout())
}
