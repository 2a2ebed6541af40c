package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeGenerated         = "generated"
	OutcomeInsufficientItems = "insufficient_items"
	OutcomeInvalidParameter  = "invalid_parameter"
	OutcomeClosetError       = "closet_error"
)

var (
	// OutfitGenerationsTotal counts generation attempts by source (api, async, daily) and outcome.
	OutfitGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_generations_total",
			Help: "Total number of outfit generation attempts",
		},
		[]string{"source", "outcome"},
	)

	OutfitGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outfit_generation_duration_seconds",
			Help:    "Duration of outfit generation including closet load and history write",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"source"},
	)

	OutfitScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "outfit_score",
			Help:    "Score of the selected outfit on the 0-100 scale",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)

	OutfitCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "outfit_candidates",
			Help:    "Number of combinations scored per generation",
			Buckets: []float64{1, 5, 10, 25, 50, 75, 100},
		},
	)

	// OutfitHistoryFailuresTotal counts generated outfits that could not be stored.
	OutfitHistoryFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outfit_history_failures_total",
			Help: "Total number of generated outfits that failed to persist",
		},
	)

	ImageURLCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_url_cache_misses_total",
			Help: "Total number of presigned image URLs signed on a cache miss",
		},
	)

	ImageURLCacheFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_url_cache_fallbacks_total",
			Help: "Total number of image URLs signed directly after the cache failed",
		},
	)
)

func RecordGeneration(source, outcome string, duration time.Duration) {
	OutfitGenerationsTotal.WithLabelValues(source, outcome).Inc()
	OutfitGenerationDuration.WithLabelValues(source).Observe(duration.Seconds())
}
