// internal/session/store.go

// Package session persists ConversationState between turns. One state
// instance exists per conversation; the engine serializes turns, so stores
// only need to be safe for concurrent access across different conversations.
package session

import (
	"context"
	"errors"

	"foodiebot/internal/models"
)

// ErrNotFound is returned when no state exists for a conversation yet.
var ErrNotFound = errors.New("conversation state not found")

// Store loads and saves conversation state snapshots.
type Store interface {
	Load(ctx context.Context, conversationID string) (*models.ConversationState, error)
	Save(ctx context.Context, state *models.ConversationState) error
}
