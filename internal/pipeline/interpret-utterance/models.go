// internal/pipeline/interpret-utterance/models.go
package interpretutterance

import "foodiebot/internal/models"

type Input struct {
	Utterance string `json:"utterance"`
}

type Output struct {
	Signals      models.PreferenceSignals `json:"signals"`
	VocabVersion string                   `json:"vocabVersion"`
}
