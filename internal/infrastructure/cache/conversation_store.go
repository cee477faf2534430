// Package cache guarda el estado de las conversaciones en Redis con expiración
// por inactividad.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

var _ repository.ConversationRepository = (*ConversationStore)(nil)

const maxJitter = 5 * time.Minute

// ConversationStore implementa repository.ConversationRepository sobre Redis.
// Cada Save renueva el TTL; una conversación expirada se lee como inexistente.
type ConversationStore struct {
	client  redis.UniversalClient
	baseTTL time.Duration
	jitter  func() time.Duration
}

// NewConversationStore construye el store con TTL base ttl (más un jitter de hasta 5 min).
func NewConversationStore(client redis.UniversalClient, ttl time.Duration) *ConversationStore {
	return &ConversationStore{
		client:  client,
		baseTTL: ttl,
		jitter:  func() time.Duration { return time.Duration(rand.Int63n(int64(maxJitter))) },
	}
}

// WithoutJitter TTL exacto; útil en pruebas.
func (s *ConversationStore) WithoutJitter() *ConversationStore {
	s.jitter = func() time.Duration { return 0 }
	return s
}

func (s *ConversationStore) Get(ctx context.Context, id string) (*entity.ConversationState, error) {
	data, err := s.client.Get(ctx, conversationKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var st entity.ConversationState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unmarshal conversation failed: %w", err)
	}
	if st.Cart == nil {
		st.Cart = entity.Cart{}
	}
	return &st, nil
}

func (s *ConversationStore) Save(ctx context.Context, state *entity.ConversationState) error {
	if state == nil || state.ID == "" {
		return domain.ErrInvalidInput
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal conversation failed: %w", err)
	}
	ttl := s.baseTTL + s.jitter()
	if err := s.client.Set(ctx, conversationKey(state.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *ConversationStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, conversationKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func conversationKey(id string) string {
	return fmt.Sprintf("conversation:%s", id)
}
