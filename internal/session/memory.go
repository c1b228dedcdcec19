// internal/session/memory.go
package session

import (
	"context"
	"sync"

	"foodiebot/internal/models"
)

// MemoryStore keeps conversation state in-process. State lives for the
// process lifetime and is discarded on restart, matching the core contract
// that no cross-conversation persistence is required.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*models.ConversationState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string]*models.ConversationState),
	}
}

// Load returns a snapshot copy so callers never alias the stored state.
func (s *MemoryStore) Load(_ context.Context, conversationID string) (*models.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[conversationID]
	if !ok {
		return nil, ErrNotFound
	}
	return state.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, state *models.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state.ConversationID] = state.Clone()
	return nil
}
