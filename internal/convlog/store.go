// internal/convlog/store.go
package convlog

import (
	"context"

	"foodiebot/internal/models"
)

// Store is an append-only record of processed turns. Appends never block a
// turn: the engine logs failures and keeps going.
type Store interface {
	Append(ctx context.Context, record models.TurnRecord) error
}
