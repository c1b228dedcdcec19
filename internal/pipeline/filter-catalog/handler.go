// internal/pipeline/filter-catalog/handler.go
package filtercatalog

import (
	"context"

	"foodiebot/internal/common/logger"
	"foodiebot/internal/models"
)

const StageName = "filter-catalog"

// Handler applies the hard filters (budget ceiling, required tag overlap) to
// the catalog snapshot. Mood is a soft preference and never filters here.
//
// When the hard filters eliminate everything, the filter relaxes in a fixed
// order: the tag requirement is dropped first, then the budget ceiling. The
// final fallback is the full catalog, so the output is never empty unless the
// catalog itself is.
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
	budget := input.State.EffectiveBudget(input.Signals)
	required := requiredTags(input.Signals, input.State)

	matched := match(input.Catalog, budget, required)
	if len(matched) > 0 || len(input.Catalog) == 0 {
		return &Output{Products: matched}, nil
	}

	// Relaxation step 1: drop the tag requirement.
	relaxedStages := []string{}
	if len(required) > 0 {
		relaxedStages = append(relaxedStages, RelaxTags)
		matched = match(input.Catalog, budget, nil)
		if len(matched) > 0 {
			h.logRelaxation(input, relaxedStages, len(matched))
			return &Output{Products: matched, Relaxed: true, RelaxedStages: relaxedStages}, nil
		}
	}

	// Relaxation step 2: drop the budget ceiling as well.
	if budget != nil {
		relaxedStages = append(relaxedStages, RelaxBudget)
	}
	matched = match(input.Catalog, nil, nil)
	h.logRelaxation(input, relaxedStages, len(matched))
	return &Output{Products: matched, Relaxed: true, RelaxedStages: relaxedStages}, nil
}

func (h *Handler) logRelaxation(input *Input, stages []string, count int) {
	h.logger.Info("hard filters relaxed", map[string]interface{}{
		"conversationId": input.State.ConversationID,
		"stages":         stages,
		"resultCount":    count,
	})
}

// requiredTags unions the turn's tags with the conversation's accumulated
// tags; an empty union means no tag requirement.
func requiredTags(signals models.PreferenceSignals, state *models.ConversationState) map[string]bool {
	required := make(map[string]bool, len(signals.Tags)+len(state.AccumulatedTags))
	for _, t := range signals.Tags {
		required[t] = true
	}
	for _, t := range state.AccumulatedTags {
		required[t] = true
	}
	if len(required) == 0 {
		return nil
	}
	return required
}

func match(catalog []models.Product, budget *float64, required map[string]bool) []models.Product {
	matched := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if budget != nil && p.Price > *budget {
			continue
		}
		if required != nil && !p.HasAnyTag(required) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
