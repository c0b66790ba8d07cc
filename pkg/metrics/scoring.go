package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the prominence scoring HTTP handler
	ScoreDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "prominence_score_latency_seconds",
		Help:    "Latency of prominence score calculation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total prominence scores computed
	ScoreTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prominence_score_requests_total",
		Help: "Total number of prominence score requests",
	})

	// How often the predictor failed and the fallback score was served
	ScoreFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prominence_score_fallback_total",
		Help: "Number of scores served from the predictor fallback",
	})

	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "policy_recommend_latency_seconds",
		Help:    "Latency of policy recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "policy_recommend_requests_total",
		Help: "Total number of policy recommendation requests",
	})
)

func Init() {
	prometheus.MustRegister(
		ScoreDuration,
		ScoreTotal,
		ScoreFallbackTotal,
		RecommendDuration,
		RecommendTotal,
	)
}
