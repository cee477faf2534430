package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/repository"
)

// ConversationRepository estado de conversaciones en memoria, sin expiración.
type ConversationRepository struct {
	mu     sync.RWMutex
	states map[string]*entity.ConversationState
}

var _ repository.ConversationRepository = (*ConversationRepository)(nil)

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{states: make(map[string]*entity.ConversationState)}
}

func (r *ConversationRepository) Get(_ context.Context, id string) (*entity.ConversationState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.states[id]
	if !ok {
		return nil, nil
	}
	return st.Clone(), nil
}

func (r *ConversationRepository) Save(_ context.Context, state *entity.ConversationState) error {
	if state == nil || state.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.ID] = state.Clone()
	return nil
}

func (r *ConversationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, id)
	return nil
}
