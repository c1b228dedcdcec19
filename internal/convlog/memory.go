// internal/convlog/memory.go
package convlog

import (
	"context"
	"sync"

	"foodiebot/internal/models"
)

// MemoryStore keeps turn records in process memory. Used in tests and in the
// zero-infrastructure default deployment.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.TurnRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, record models.TurnRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns a snapshot of everything appended so far.
func (s *MemoryStore) Records() []models.TurnRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TurnRecord(nil), s.records...)
}
