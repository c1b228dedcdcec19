// internal/pipeline/rank-recommendations/models.go
package rankrecommendations

import "foodiebot/internal/models"

type Input struct {
	Products []models.Product         `json:"products"`
	Signals  models.PreferenceSignals `json:"signals"`
	State    *models.ConversationState `json:"state"`
}

type Output struct {
	Recommendations []models.Recommendation `json:"recommendations"`
}
