// internal/catalog/store.go

// Package catalog provides read access to the product catalog. The engine
// treats the catalog as read-only; seeding is the catalog-seeder tool's job.
package catalog

import (
	"context"

	"foodiebot/internal/models"
)

// Store returns the product catalog. Products must be a complete snapshot,
// consistent within one call, ordered by product ID ascending.
type Store interface {
	Products(ctx context.Context) ([]models.Product, error)
}
