// internal/pipeline/rank-recommendations/config.go
package rankrecommendations

// Weights for the per-product match score.
type Weights struct {
	TagOverlap   float64 // per overlapping requested tag
	MoodAffinity float64 // times the mood to category affinity
	PriceValue   float64 // times closeness-under-budget
	CategoryHint float64 // flat bonus when the category hint matches
	Popularity   float64 // times the 0-100 catalog popularity score
}

type Config struct {
	TopN    int
	Weights Weights
}

func LoadConfig() *Config {
	return &Config{
		TopN: 5,
		Weights: Weights{
			TagOverlap:   3,
			MoodAffinity: 2,
			PriceValue:   2,
			CategoryHint: 2,
			Popularity:   0.02,
		},
	}
}
