// internal/pipeline/rank-recommendations/handler_test.go
package rankrecommendations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiebot/internal/common/logger"
	"foodiebot/internal/models"
)

func newTestHandler() *Handler {
	return NewHandler(LoadConfig(), logger.NewNoOpLogger())
}

func ptr(v float64) *float64 { return &v }

func TestExecute_EmptyInput(t *testing.T) {
	handler := newTestHandler()

	out, err := handler.Execute(context.Background(), &Input{
		State: models.NewConversationState("c1", 50),
	})
	require.NoError(t, err)
	assert.Empty(t, out.Recommendations)
}

func TestExecute_OrderedByMatchScoreDescending(t *testing.T) {
	handler := newTestHandler()

	products := []models.Product{
		{ID: "FF001", Category: "Burgers", Price: 9, DietaryTags: []string{"classic"}, PopularityScore: 70},
		{ID: "FF002", Category: "Burgers", Price: 8, DietaryTags: []string{"spicy"}, PopularityScore: 70},
		{ID: "FF003", Category: "Pizza", Price: 12, DietaryTags: []string{"spicy", "gourmet"}, PopularityScore: 70},
	}

	out, err := handler.Execute(context.Background(), &Input{
		Products: products,
		Signals:  models.PreferenceSignals{Tags: []string{"spicy", "gourmet"}},
		State:    models.NewConversationState("c1", 50),
	})
	require.NoError(t, err)

	require.Len(t, out.Recommendations, 3)
	for i := 1; i < len(out.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			out.Recommendations[i-1].MatchScore,
			out.Recommendations[i].MatchScore,
		)
	}
	// Two overlapping tags beat one.
	assert.Equal(t, "FF003", out.Recommendations[0].Product.ID)
}

func TestExecute_TieBreaksByProductID(t *testing.T) {
	handler := newTestHandler()

	// Identical products except ID score identically.
	products := []models.Product{
		{ID: "FF009", Category: "Pizza", Price: 10, PopularityScore: 50},
		{ID: "FF002", Category: "Pizza", Price: 10, PopularityScore: 50},
		{ID: "FF005", Category: "Pizza", Price: 10, PopularityScore: 50},
	}

	out, err := handler.Execute(context.Background(), &Input{
		Products: products,
		State:    models.NewConversationState("c1", 50),
	})
	require.NoError(t, err)

	require.Len(t, out.Recommendations, 3)
	assert.Equal(t, "FF002", out.Recommendations[0].Product.ID)
	assert.Equal(t, "FF005", out.Recommendations[1].Product.ID)
	assert.Equal(t, "FF009", out.Recommendations[2].Product.ID)
}

func TestExecute_TruncatesToTopNWithRanks(t *testing.T) {
	handler := newTestHandler()

	var products []models.Product
	for i := 0; i < 12; i++ {
		products = append(products, models.Product{
			ID:              string(rune('A'+i)) + "001",
			Category:        "Burgers",
			Price:           10,
			PopularityScore: 50 + i,
		})
	}

	out, err := handler.Execute(context.Background(), &Input{
		Products: products,
		State:    models.NewConversationState("c1", 50),
	})
	require.NoError(t, err)

	require.Len(t, out.Recommendations, handler.config.TopN)
	for i, rec := range out.Recommendations {
		assert.Equal(t, i+1, rec.Rank)
	}
}

func TestExecute_MoodAffinityFromStateCarryOver(t *testing.T) {
	handler := newTestHandler()
	state := models.NewConversationState("c1", 50)
	state.LastMood = models.MoodIndulgent

	products := []models.Product{
		{ID: "FF001", Category: "Desserts", Price: 6, PopularityScore: 50},
		{ID: "FF002", Category: "Tacos & Wraps", Price: 6, PopularityScore: 50},
	}

	// No mood this turn; the conversation's last mood prefers desserts.
	out, err := handler.Execute(context.Background(), &Input{
		Products: products,
		State:    state,
	})
	require.NoError(t, err)

	require.Len(t, out.Recommendations, 2)
	assert.Equal(t, "FF001", out.Recommendations[0].Product.ID)
}

func TestExecute_CategoryHintBonus(t *testing.T) {
	handler := newTestHandler()

	products := []models.Product{
		{ID: "FF001", Category: "Pizza", Price: 10, PopularityScore: 50},
		{ID: "FF002", Category: "Burgers", Price: 10, PopularityScore: 50},
	}

	out, err := handler.Execute(context.Background(), &Input{
		Products: products,
		Signals:  models.PreferenceSignals{CategoryHint: "Burgers"},
		State:    models.NewConversationState("c1", 50),
	})
	require.NoError(t, err)

	require.Len(t, out.Recommendations, 2)
	assert.Equal(t, "FF002", out.Recommendations[0].Product.ID)
}

func TestPriceValue(t *testing.T) {
	assert.Equal(t, 0.5, priceValue(10, nil))
	assert.Equal(t, 0.0, priceValue(12, ptr(10)))
	assert.InDelta(t, 0.8, priceValue(8, ptr(10)), 0.001)
	assert.InDelta(t, 1.0, priceValue(10, ptr(10)), 0.001)
}
