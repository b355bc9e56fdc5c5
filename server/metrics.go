package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_intel_analyses_total",
		Help: "Analyses performed, by language and threat level.",
	}, []string{"language", "threat_level"})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "social_intel_analysis_duration_seconds",
		Help:    "Latency of single analysis requests.",
		Buckets: prometheus.DefBuckets,
	})

	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "social_intel_batch_size",
		Help:    "Number of posts per batch request.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
	})
)
