package repository

import (
	"context"

	"github.com/jhoicas/shopbot/internal/domain/entity"
)

// ConversationRepository almacena el estado de cada conversación por su ID.
type ConversationRepository interface {
	// Get devuelve (nil, nil) si la conversación no existe o expiró.
	Get(ctx context.Context, id string) (*entity.ConversationState, error)
	Save(ctx context.Context, state *entity.ConversationState) error
	Delete(ctx context.Context, id string) error
}
