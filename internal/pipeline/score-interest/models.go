// internal/pipeline/score-interest/models.go
package scoreinterest

import "foodiebot/internal/models"

type Input struct {
	Prior       float64                   `json:"prior"`
	Signals     models.PreferenceSignals  `json:"signals"`
	State       *models.ConversationState `json:"state"`
	MatchCount  int                       `json:"matchCount"`
	CatalogSize int                       `json:"catalogSize"`
	Relaxed     bool                      `json:"relaxed"`
}

type Output struct {
	Score         float64  `json:"score"`
	Delta         float64  `json:"delta"`
	NewDimensions []string `json:"newDimensions,omitempty"`
}
