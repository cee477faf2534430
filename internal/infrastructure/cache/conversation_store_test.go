package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
)

// setupTestRedis levanta miniredis y un store apuntando a él.
func setupTestRedis(t *testing.T) (*ConversationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewConversationStore(client, 30*time.Minute).WithoutJitter(), mr
}

func TestSaveYGet(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	pay := "tarjeta"
	st := entity.NewConversationState("c-1")
	st.Stage = entity.StageAskEmail
	st.Cart.Add("CO600", 2)
	st.PaymentMethod = &pay

	require.NoError(t, store.Save(ctx, st))
	assert.True(t, mr.Exists("conversation:c-1"))
	assert.Equal(t, 30*time.Minute, mr.TTL("conversation:c-1"))

	got, err := store.Get(ctx, "c-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.StageAskEmail, got.Stage)
	assert.Equal(t, entity.Cart{"CO600": 2}, got.Cart)
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, "tarjeta", *got.PaymentMethod)
	assert.Nil(t, got.RFC)
}

func TestGet_NoExisteEsNil(t *testing.T) {
	store, _ := setupTestRedis(t)

	got, err := store.Get(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGet_Expirada(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, entity.NewConversationState("c-2")))

	mr.FastForward(31 * time.Minute)

	got, err := store.Get(ctx, "c-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGet_JSONCorrupto(t *testing.T) {
	store, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(conversationKey("c-3"), "{no es json"))

	_, err := store.Get(context.Background(), "c-3")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, entity.NewConversationState("c-4")))

	require.NoError(t, store.Delete(ctx, "c-4"))
	assert.False(t, mr.Exists("conversation:c-4"))
	// borrar algo inexistente no es error
	assert.NoError(t, store.Delete(ctx, "c-4"))
}

func TestSave_Invalido(t *testing.T) {
	store, _ := setupTestRedis(t)
	assert.ErrorIs(t, store.Save(context.Background(), &entity.ConversationState{}), domain.ErrInvalidInput)
}

func TestSave_ConJitterDentroDelRango(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := NewConversationStore(client, 10*time.Minute)

	require.NoError(t, store.Save(context.Background(), entity.NewConversationState("c-5")))
	ttl := mr.TTL("conversation:c-5")
	assert.GreaterOrEqual(t, ttl, 10*time.Minute)
	assert.Less(t, ttl, 15*time.Minute)
}

func TestRedisCaido(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	store := NewConversationStore(client, time.Minute)
	mr.Close()

	_, err := store.Get(context.Background(), "c-6")
	assert.Error(t, err)
}
