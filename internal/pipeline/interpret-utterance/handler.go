// internal/pipeline/interpret-utterance/handler.go
package interpretutterance

import (
	"context"
	"unicode/utf8"

	"foodiebot/internal/common/logger"
	"foodiebot/internal/models"
	"foodiebot/internal/vocab"
)

const StageName = "interpret-utterance"

// Handler extracts structured preference signals from a raw utterance.
// Extraction is a total function: any input, including empty or non-UTF-8
// text, yields a valid (possibly all-unspecified) PreferenceSignals.
type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"stage": StageName}),
	}
}

// Execute never returns a non-nil error; the error return exists only to keep
// the stage signature uniform across the pipeline.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	text := input.Utterance

	// Malformed input is substituted with empty signals, not propagated.
	if !utf8.ValidString(text) {
		h.logger.Warn("utterance is not valid UTF-8, treating as empty", map[string]interface{}{
			"bytes": len(text),
		})
		return &Output{VocabVersion: vocab.Version}, nil
	}

	if h.config.MaxUtteranceLength > 0 && len(text) > h.config.MaxUtteranceLength {
		text = text[:h.config.MaxUtteranceLength]
	}

	signals := models.PreferenceSignals{
		Mood:           vocab.LastMood(text),
		BudgetCeiling:  vocab.BudgetCeiling(text),
		Tags:           vocab.Tags(text),
		Enthusiasm:     vocab.EnthusiasmLevel(text),
		CategoryHint:   vocab.CategoryHint(text),
		Hesitation:     vocab.HasHesitation(text),
		PurchaseIntent: vocab.HasPurchaseIntent(text),
	}

	h.logger.Debug("signals extracted", map[string]interface{}{
		"mood":       signals.Mood,
		"tags":       signals.Tags,
		"budget":     signals.BudgetCeiling,
		"enthusiasm": signals.Enthusiasm.String(),
	})

	return &Output{Signals: signals, VocabVersion: vocab.Version}, nil
}
