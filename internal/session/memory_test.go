// internal/session/memory_test.go
package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiebot/internal/models"
)

func TestMemoryStore_LoadMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SaveAndLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state := models.NewConversationState("c1", 50)
	state.Advance(models.PreferenceSignals{Tags: []string{"spicy"}, Mood: models.MoodSpicy}, 62)
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 62.0, loaded.Score)
	assert.Equal(t, 1, loaded.TurnIndex)
	assert.Equal(t, []string{"spicy"}, loaded.AccumulatedTags)
	assert.True(t, loaded.SeenDimensions[models.DimensionMood])
}

func TestMemoryStore_LoadReturnsSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state := models.NewConversationState("c1", 50)
	require.NoError(t, store.Save(ctx, state))

	first, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	first.Score = 99
	first.AccumulatedTags = append(first.AccumulatedTags, "vegan")

	second, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, second.Score)
	assert.Empty(t, second.AccumulatedTags)
}

func TestMemoryStore_SaveCopiesState(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state := models.NewConversationState("c1", 50)
	require.NoError(t, store.Save(ctx, state))
	state.Score = 10

	loaded, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, loaded.Score)
}
