// internal/pipeline/score-interest/config.go
package scoreinterest

// Weights is the scoring rubric. Every weight is a delta contribution; the
// final score is always clamped to [0,100].
type Weights struct {
	NewDimension      float64 // per signal dimension first specified this turn
	Enthusiasm        float64 // multiplied by the enthusiasm ordinal (1..3)
	MatchRatio        float64 // peak of the bell-shaped match-ratio bonus
	RelaxationPenalty float64 // subtracted when hard filters had to relax
	HesitationPenalty float64 // subtracted on hedging/dislike markers
	PurchaseIntent    float64 // added on ordering language
}

type Config struct {
	Weights Weights
	// TargetMatchRatio is where the match-ratio bonus peaks: a filtered set
	// around this share of the catalog is neither too broad nor too narrow.
	TargetMatchRatio float64
	// RatioSpread is the standard deviation of the bell curve.
	RatioSpread float64
}

func LoadConfig() *Config {
	return &Config{
		Weights: Weights{
			NewDimension:      6,
			Enthusiasm:        2,
			MatchRatio:        8,
			RelaxationPenalty: 4,
			HesitationPenalty: 5,
			PurchaseIntent:    10,
		},
		TargetMatchRatio: 0.2,
		RatioSpread:      0.15,
	}
}

// FromWeightMap overrides rubric weights from configuration; unknown keys are
// ignored so config files can carry forward-compatible entries.
func (c *Config) FromWeightMap(weights map[string]float64) {
	for key, value := range weights {
		switch key {
		case "new_dimension":
			c.Weights.NewDimension = value
		case "enthusiasm":
			c.Weights.Enthusiasm = value
		case "match_ratio":
			c.Weights.MatchRatio = value
		case "relaxation_penalty":
			c.Weights.RelaxationPenalty = value
		case "hesitation_penalty":
			c.Weights.HesitationPenalty = value
		case "purchase_intent":
			c.Weights.PurchaseIntent = value
		}
	}
}
