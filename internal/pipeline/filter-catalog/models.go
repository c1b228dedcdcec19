// internal/pipeline/filter-catalog/models.go
package filtercatalog

import "foodiebot/internal/models"

type Input struct {
	Catalog []models.Product          `json:"catalog"`
	Signals models.PreferenceSignals  `json:"signals"`
	State   *models.ConversationState `json:"state"`
}

// Relaxation stage names, in the order they are applied.
const (
	RelaxTags   = "tags"
	RelaxBudget = "budget"
)

type Output struct {
	Products []models.Product `json:"products"`
	// Relaxed is the side channel flagging that hard filters had to be
	// dropped to produce a non-empty result.
	Relaxed       bool     `json:"relaxed"`
	RelaxedStages []string `json:"relaxedStages,omitempty"`
}
