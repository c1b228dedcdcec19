// internal/pipeline/interpret-utterance/handler_test.go
package interpretutterance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiebot/internal/common/logger"
	"foodiebot/internal/models"
	"foodiebot/internal/vocab"
)

func newTestHandler() *Handler {
	return NewHandler(LoadConfig(), logger.NewNoOpLogger())
}

func TestExecute_ExtractsAllDimensions(t *testing.T) {
	handler := newTestHandler()

	out, err := handler.Execute(context.Background(), &Input{
		Utterance: "I'm really craving something spicy and vegan, under $10!",
	})
	require.NoError(t, err)

	assert.Equal(t, models.MoodSpicy, out.Signals.Mood)
	assert.Equal(t, []string{"spicy", "vegan"}, out.Signals.Tags)
	require.NotNil(t, out.Signals.BudgetCeiling)
	assert.InDelta(t, 10, *out.Signals.BudgetCeiling, 0.001)
	assert.Equal(t, models.EnthusiasmHigh, out.Signals.Enthusiasm)
	assert.Equal(t, vocab.Version, out.VocabVersion)
}

func TestExecute_EmptySignalsForSmallTalk(t *testing.T) {
	handler := newTestHandler()

	for _, utterance := range []string{"", "hello", "how are you today"} {
		out, err := handler.Execute(context.Background(), &Input{Utterance: utterance})
		require.NoError(t, err)
		assert.True(t, out.Signals.Empty(), "utterance %q", utterance)
	}
}

func TestExecute_Deterministic(t *testing.T) {
	handler := newTestHandler()
	input := &Input{Utterance: "cozy pizza night, maybe something under $15"}

	first, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)
	second, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_CaseInsensitive(t *testing.T) {
	handler := newTestHandler()

	lower, err := handler.Execute(context.Background(), &Input{Utterance: "spicy vegan under $10"})
	require.NoError(t, err)
	upper, err := handler.Execute(context.Background(), &Input{Utterance: "SPICY VEGAN UNDER $10"})
	require.NoError(t, err)

	assert.Equal(t, lower.Signals, upper.Signals)
}

func TestExecute_NonUTF8TreatedAsEmpty(t *testing.T) {
	handler := newTestHandler()

	out, err := handler.Execute(context.Background(), &Input{Utterance: string([]byte{0xff, 0xfe, 0xfd})})
	require.NoError(t, err)
	assert.True(t, out.Signals.Empty())
	assert.Equal(t, vocab.Version, out.VocabVersion)
}

func TestExecute_HesitationAndIntent(t *testing.T) {
	handler := newTestHandler()

	out, err := handler.Execute(context.Background(), &Input{Utterance: "hmm maybe, that looks too expensive"})
	require.NoError(t, err)
	assert.True(t, out.Signals.Hesitation)
	assert.False(t, out.Signals.PurchaseIntent)

	out, err = handler.Execute(context.Background(), &Input{Utterance: "perfect, I'll take it"})
	require.NoError(t, err)
	assert.False(t, out.Signals.Hesitation)
	assert.True(t, out.Signals.PurchaseIntent)
}

func TestExecute_CategoryHint(t *testing.T) {
	handler := newTestHandler()

	out, err := handler.Execute(context.Background(), &Input{Utterance: "show me your burgers"})
	require.NoError(t, err)
	assert.Equal(t, "Burgers", out.Signals.CategoryHint)
}
