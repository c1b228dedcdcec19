// internal/vocab/vocab_test.go
package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodiebot/internal/models"
)

func TestLastMood(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.Mood
	}{
		{"no mood", "hello there", ""},
		{"single mood", "I want something spicy", models.MoodSpicy},
		{"case insensitive", "SOMETHING COZY PLEASE", models.MoodComfort},
		{"last mention wins", "something healthy... no wait, indulgent", models.MoodIndulgent},
		{"last mention wins reversed", "indulgent? actually keep it healthy", models.MoodHealthy},
		{"multiword keyword", "time to treat myself", models.MoodIndulgent},
		{"substring does not match", "a hotel nearby", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LastMood(tt.text))
		})
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"no tags", "hello there", nil},
		{"single tag", "something spicy", []string{"spicy"}},
		{"synonym vegetarian", "any vegetarian options?", []string{"vegan"}},
		{"synonym hot", "make it hot", []string{"spicy"}},
		{"gluten free with space", "needs to be gluten free", []string{"gluten-free"}},
		{"first mention order", "vegetarian and spicy please", []string{"vegan", "spicy"}},
		{"deduplicated", "spicy spicy hot", []string{"spicy"}},
		{"fancy is gourmet", "something fancy tonight", []string{"gourmet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tags(tt.text))
		})
	}
}

func TestBudgetCeiling(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *float64
	}{
		{"no budget", "whatever looks good", nil},
		{"under dollar amount", "something under $10", ptr(10)},
		{"below without dollar sign", "keep it below 15", ptr(15)},
		{"less than with cents", "less than 12.50 please", ptr(12.5)},
		{"max of", "max of $20", ptr(20)},
		{"amount or less", "$8 or less", ptr(8)},
		{"amount tops", "$9 tops", ptr(9)},
		{"last mention wins", "under $20, actually $10 tops", ptr(10)},
		{"zero rejected", "under $0", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetCeiling(tt.text)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 0.001)
		})
	}
}

func TestEnthusiasmLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.Enthusiasm
	}{
		{"flat statement", "show me the menu", models.EnthusiasmUnspecified},
		{"one intensifier", "really want a burger", models.EnthusiasmLow},
		{"one bang", "a burger!", models.EnthusiasmLow},
		{"emphasis word", "craving a burger", models.EnthusiasmMedium},
		{"emphasis plus bang", "craving a burger!", models.EnthusiasmMedium},
		{"stacked", "really love this! so good!", models.EnthusiasmHigh},
		{"bangs capped", "ok!!!!!!!!", models.EnthusiasmMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnthusiasmLevel(tt.text))
		})
	}
}

func TestHasHesitation(t *testing.T) {
	assert.False(t, HasHesitation("I want that"))
	assert.True(t, HasHesitation("maybe later"))
	assert.True(t, HasHesitation("that's too expensive"))
	assert.True(t, HasHesitation("I don't like onions"))
	assert.True(t, HasHesitation("i dont like onions"))
}

func TestHasPurchaseIntent(t *testing.T) {
	assert.False(t, HasPurchaseIntent("what do you have?"))
	assert.True(t, HasPurchaseIntent("I'll take it"))
	assert.True(t, HasPurchaseIntent("i will take the burger"))
	assert.True(t, HasPurchaseIntent("order the wings for me"))
	assert.True(t, HasPurchaseIntent("add to cart"))
}

func TestCategoryHint(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"no hint", "something tasty", ""},
		{"burger", "a good burger", "Burgers"},
		{"wings", "hot wings tonight", "Fried Chicken"},
		{"ice cream", "ice cream for dessert run", "Desserts"},
		{"first mention wins", "pizza or tacos?", "Pizza"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryHint(tt.text))
		})
	}
}

func TestMoodCategoryAffinity(t *testing.T) {
	assert.Equal(t, 0.0, MoodCategoryAffinity("", "Pizza"))
	assert.Equal(t, 0.0, MoodCategoryAffinity(models.MoodHealthy, "Desserts"))
	assert.Equal(t, 1.0, MoodCategoryAffinity(models.MoodIndulgent, "Desserts"))

	for mood, categories := range moodAffinity {
		for category, affinity := range categories {
			assert.GreaterOrEqual(t, affinity, 0.0, "%s/%s", mood, category)
			assert.LessOrEqual(t, affinity, 1.0, "%s/%s", mood, category)
		}
	}
}

func ptr(v float64) *float64 {
	return &v
}
