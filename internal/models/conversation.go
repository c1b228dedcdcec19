// internal/models/conversation.go
package models

import "time"

// ConversationState is the running state of one conversation. It is owned by
// exactly one conversation and mutated once per turn; the engine serializes
// turns per conversation, so no internal locking is needed here.
type ConversationState struct {
	ConversationID  string          `json:"conversationId"`
	Score           float64         `json:"score"`
	TurnIndex       int             `json:"turnIndex"`
	AccumulatedTags []string        `json:"accumulatedTags,omitempty"`
	BudgetCeiling   *float64        `json:"budgetCeiling,omitempty"`
	LastMood        Mood            `json:"lastMood,omitempty"`
	SeenDimensions  map[string]bool `json:"seenDimensions,omitempty"`
}

// NewConversationState returns a fresh state at the neutral baseline score.
func NewConversationState(conversationID string, baselineScore float64) *ConversationState {
	return &ConversationState{
		ConversationID: conversationID,
		Score:          baselineScore,
		SeenDimensions: make(map[string]bool),
	}
}

// EffectiveBudget returns the tightest budget ceiling between the state and
// the current turn's signals, or nil when neither specifies one.
func (s *ConversationState) EffectiveBudget(signals PreferenceSignals) *float64 {
	switch {
	case s.BudgetCeiling == nil:
		return signals.BudgetCeiling
	case signals.BudgetCeiling == nil:
		return s.BudgetCeiling
	case *signals.BudgetCeiling < *s.BudgetCeiling:
		return signals.BudgetCeiling
	default:
		return s.BudgetCeiling
	}
}

// Advance applies one processed turn to the state: turn index +1, tags
// unioned (the accumulated set never shrinks), budget ceiling tightened to the
// minimum seen, and the score replaced by the scorer's result.
func (s *ConversationState) Advance(signals PreferenceSignals, score float64) {
	s.TurnIndex++
	s.Score = score

	for _, tag := range signals.Tags {
		if !s.hasTag(tag) {
			s.AccumulatedTags = append(s.AccumulatedTags, tag)
		}
	}

	if b := s.EffectiveBudget(signals); b != nil {
		v := *b
		s.BudgetCeiling = &v
	}

	if signals.Mood != "" {
		s.LastMood = signals.Mood
	}

	if s.SeenDimensions == nil {
		s.SeenDimensions = make(map[string]bool)
	}
	for _, dim := range signals.SpecifiedDimensions() {
		s.SeenDimensions[dim] = true
	}
}

func (s *ConversationState) hasTag(tag string) bool {
	for _, t := range s.AccumulatedTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so stores can hand out snapshots without aliasing
// the caller's mutable state.
func (s *ConversationState) Clone() *ConversationState {
	c := *s
	c.AccumulatedTags = append([]string(nil), s.AccumulatedTags...)
	if s.BudgetCeiling != nil {
		v := *s.BudgetCeiling
		c.BudgetCeiling = &v
	}
	c.SeenDimensions = make(map[string]bool, len(s.SeenDimensions))
	for k, v := range s.SeenDimensions {
		c.SeenDimensions[k] = v
	}
	return &c
}

// Recommendation pairs a product with its per-turn match score and 1-based
// rank. Recommendations are created fresh each turn and never stored in state.
type Recommendation struct {
	Product    Product `json:"product"`
	MatchScore float64 `json:"matchScore"`
	Rank       int     `json:"rank"`
}

// TurnRecord is the immutable log row for one processed turn. It is assembled
// once and handed to the conversation log store; nothing mutates it afterwards.
type TurnRecord struct {
	ConversationID  string            `json:"conversationId"`
	TurnIndex       int               `json:"turnIndex"`
	Timestamp       time.Time         `json:"timestamp"`
	Utterance       string            `json:"utterance"`
	BotResponse     string            `json:"botResponse"`
	Signals         PreferenceSignals `json:"signals"`
	Score           float64           `json:"score"`
	RelaxedFilters  bool              `json:"relaxedFilters"`
	Recommendations []Recommendation  `json:"recommendations,omitempty"`
}
