// internal/catalog/memory.go
package catalog

import (
	"context"
	"sort"

	"foodiebot/internal/models"
)

// MemoryStore serves a fixed in-process catalog. It backs tests and the
// zero-infrastructure default deployment.
type MemoryStore struct {
	products []models.Product
}

func NewMemoryStore(products []models.Product) *MemoryStore {
	sorted := append([]models.Product(nil), products...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &MemoryStore{products: sorted}
}

// Products returns a copy so callers cannot mutate the shared catalog.
func (s *MemoryStore) Products(_ context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), s.products...), nil
}
