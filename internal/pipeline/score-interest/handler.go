// internal/pipeline/score-interest/handler.go
package scoreinterest

import (
	"context"
	"math"

	"foodiebot/internal/common/logger"
)

const StageName = "score-interest"

// Handler computes the new interest score from a fixed rubric. The score
// rises when the user gives more specific, enthusiastic, well-matched input
// and never leaves [0,100]. Deterministic given inputs; no randomness.
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

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	// A turn carrying no recognizable signal moves the score not at all:
	// no dimensions, no bonuses, no penalty.
	if input.Signals.Empty() && !input.Relaxed {
		return &Output{Score: clamp(input.Prior)}, nil
	}

	w := h.config.Weights
	var delta float64

	// Bonus per dimension specified this turn that the conversation had
	// never specified before. A repeated mood earns nothing here.
	var newDims []string
	for _, dim := range input.Signals.SpecifiedDimensions() {
		if !input.State.SeenDimensions[dim] {
			newDims = append(newDims, dim)
		}
	}
	delta += float64(len(newDims)) * w.NewDimension

	if e := input.Signals.Enthusiasm; e > 0 {
		delta += float64(e) * w.Enthusiasm
	}

	delta += h.matchRatioBonus(input.MatchCount, input.CatalogSize)

	if input.Relaxed {
		delta -= w.RelaxationPenalty
	}
	if input.Signals.Hesitation {
		delta -= w.HesitationPenalty
	}
	if input.Signals.PurchaseIntent {
		delta += w.PurchaseIntent
	}

	score := clamp(input.Prior + delta)

	h.logger.Debug("interest score updated", map[string]interface{}{
		"prior":         input.Prior,
		"delta":         delta,
		"score":         score,
		"newDimensions": newDims,
	})

	return &Output{Score: score, Delta: delta, NewDimensions: newDims}, nil
}

// matchRatioBonus rewards a filtered set that is neither too broad nor too
// narrow: a Gaussian peaking at the target share of the catalog.
func (h *Handler) matchRatioBonus(matchCount, catalogSize int) float64 {
	if catalogSize <= 0 || matchCount <= 0 {
		return 0
	}
	ratio := float64(matchCount) / float64(catalogSize)
	z := (ratio - h.config.TargetMatchRatio) / h.config.RatioSpread
	return h.config.Weights.MatchRatio * math.Exp(-0.5*z*z)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
