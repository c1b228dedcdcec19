// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodiebot_turns_processed_total",
			Help: "Total number of conversation turns processed",
		},
		[]string{"outcome"},
	)

	FilterRelaxations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodiebot_filter_relaxations_total",
			Help: "Total number of hard-filter relaxations by dropped stage",
		},
		[]string{"stage"},
	)

	ConversationLogFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodiebot_conversation_log_failures_total",
			Help: "Total number of swallowed conversation log append failures",
		},
	)

	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "foodiebot_turn_duration_seconds",
			Help: "Duration of turn processing in seconds",
		},
		[]string{"outcome"},
	)

	InterestScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "foodiebot_interest_score",
			Help:    "Distribution of interest scores after each turn",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)
