package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guruvela_chat_turns_total",
			Help: "Chat turns handled, by flow and outcome",
		},
		[]string{"flow", "outcome"},
	)

	ContentGaps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guruvela_content_gaps_total",
			Help: "Questions the knowledge base could not answer",
		},
		[]string{"language"},
	)

	ContentLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guruvela_content_lookups_total",
			Help: "Content page lookups, by outcome",
		},
		[]string{"outcome"},
	)

	PredictionQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "guruvela_prediction_query_duration_seconds",
			Help:    "Duration of cutoff queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "guruvela_chat_sessions_active",
			Help: "Dialogue sessions currently held in memory",
		},
	)
)
