// internal/models/signals.go
package models

// Mood is an extracted craving/mood signal. The empty string means unspecified.
type Mood string

const (
	MoodComfort     Mood = "comfort"
	MoodAdventurous Mood = "adventurous"
	MoodSpicy       Mood = "spicy"
	MoodHealthy     Mood = "healthy"
	MoodIndulgent   Mood = "indulgent"
)

// Enthusiasm is the ordinal enthusiasm level derived from intensifier words
// and punctuation. Zero means unspecified, not "low".
type Enthusiasm int

const (
	EnthusiasmUnspecified Enthusiasm = iota
	EnthusiasmLow
	EnthusiasmMedium
	EnthusiasmHigh
)

func (e Enthusiasm) String() string {
	switch e {
	case EnthusiasmLow:
		return "low"
	case EnthusiasmMedium:
		return "medium"
	case EnthusiasmHigh:
		return "high"
	default:
		return "unspecified"
	}
}

// PreferenceSignals is the structured extraction from a single utterance.
// Every field is optional; absence means "unspecified", never "excluded".
type PreferenceSignals struct {
	Mood           Mood       `json:"mood,omitempty"`
	BudgetCeiling  *float64   `json:"budgetCeiling,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Enthusiasm     Enthusiasm `json:"enthusiasm,omitempty"`
	CategoryHint   string     `json:"categoryHint,omitempty"`
	Hesitation     bool       `json:"hesitation,omitempty"`
	PurchaseIntent bool       `json:"purchaseIntent,omitempty"`
}

// Signal dimension names shared by the scorer and conversation state.
const (
	DimensionMood       = "mood"
	DimensionBudget     = "budget"
	DimensionTags       = "tags"
	DimensionEnthusiasm = "enthusiasm"
)

// SpecifiedDimensions lists the dimension names the utterance actually set.
func (s PreferenceSignals) SpecifiedDimensions() []string {
	var dims []string
	if s.Mood != "" {
		dims = append(dims, DimensionMood)
	}
	if s.BudgetCeiling != nil {
		dims = append(dims, DimensionBudget)
	}
	if len(s.Tags) > 0 {
		dims = append(dims, DimensionTags)
	}
	if s.Enthusiasm != EnthusiasmUnspecified {
		dims = append(dims, DimensionEnthusiasm)
	}
	return dims
}

// Empty reports whether nothing at all was recognized in the utterance.
func (s PreferenceSignals) Empty() bool {
	return len(s.SpecifiedDimensions()) == 0 &&
		s.CategoryHint == "" && !s.Hesitation && !s.PurchaseIntent
}
