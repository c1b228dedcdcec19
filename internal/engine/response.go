// internal/engine/response.go
package engine

import (
	"fmt"

	"foodiebot/internal/models"
)

// botResponse builds the one-line reply accompanying a turn's
// recommendations.
func botResponse(recs []models.Recommendation, relaxed bool) string {
	switch {
	case len(recs) == 0:
		return "I couldn't find anything on the menu right now. Tell me a bit more about what you're craving!"
	case relaxed:
		return fmt.Sprintf("Nothing matched everything you asked for, but here are %d close options!", len(recs))
	case len(recs) == 1:
		return "I found 1 good match for you!"
	default:
		return fmt.Sprintf("I found %d good matches for you!", len(recs))
	}
}
