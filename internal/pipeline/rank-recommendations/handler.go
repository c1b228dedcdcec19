// internal/pipeline/rank-recommendations/handler.go
package rankrecommendations

import (
	"context"
	"sort"

	"foodiebot/internal/common/logger"
	"foodiebot/internal/models"
	"foodiebot/internal/vocab"
)

const StageName = "rank-recommendations"

// Handler orders the filtered subset by a weighted per-product match score
// and truncates to topN. Ties break by product ID ascending so the ordering
// is stable and reproducible. An empty input yields an empty output; that is
// a valid no-recommendations turn, not an error.
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
	if len(input.Products) == 0 {
		return &Output{Recommendations: []models.Recommendation{}}, nil
	}

	requested := make(map[string]bool, len(input.Signals.Tags))
	for _, t := range input.Signals.Tags {
		requested[t] = true
	}
	for _, t := range input.State.AccumulatedTags {
		requested[t] = true
	}

	// The turn's mood wins; otherwise the conversation's last mood carries
	// over as the soft preference.
	mood := input.Signals.Mood
	if mood == "" {
		mood = input.State.LastMood
	}

	budget := input.State.EffectiveBudget(input.Signals)

	recs := make([]models.Recommendation, 0, len(input.Products))
	for _, p := range input.Products {
		recs = append(recs, models.Recommendation{
			Product:    p,
			MatchScore: h.matchScore(p, requested, mood, input.Signals.CategoryHint, budget),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].MatchScore != recs[j].MatchScore {
			return recs[i].MatchScore > recs[j].MatchScore
		}
		return recs[i].Product.ID < recs[j].Product.ID
	})

	if len(recs) > h.config.TopN {
		recs = recs[:h.config.TopN]
	}
	for i := range recs {
		recs[i].Rank = i + 1
	}

	h.logger.Debug("recommendations ranked", map[string]interface{}{
		"inputCount":  len(input.Products),
		"outputCount": len(recs),
	})

	return &Output{Recommendations: recs}, nil
}

func (h *Handler) matchScore(p models.Product, requested map[string]bool, mood models.Mood, categoryHint string, budget *float64) float64 {
	w := h.config.Weights

	overlap := 0
	for _, t := range p.Tags() {
		if requested[t] {
			overlap++
		}
	}

	score := float64(overlap) * w.TagOverlap
	score += vocab.MoodCategoryAffinity(mood, p.Category) * w.MoodAffinity
	score += priceValue(p.Price, budget) * w.PriceValue
	if categoryHint != "" && p.Category == categoryHint {
		score += w.CategoryHint
	}
	score += float64(p.PopularityScore) * w.Popularity
	return score
}

// priceValue rewards best value within budget: closer to the ceiling but
// still under it scores higher. Over-budget products (possible after
// relaxation) score zero; with no budget every product is neutral.
func priceValue(price float64, budget *float64) float64 {
	if budget == nil || *budget <= 0 {
		return 0.5
	}
	if price > *budget {
		return 0
	}
	return price / *budget
}
