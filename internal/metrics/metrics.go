// Package metrics holds the recommender's prometheus instruments.
//
// The CLI has no listener; when configured it writes the registry to a file
// in text exposition format, suitable for a node exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the registry every instrument below is registered with.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	RecommendationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"outcome"}, // "ok", "empty"
	)

	RecommendDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movierec_recommend_duration_seconds",
			Help:    "Duration of vocabulary fitting, scoring and ranking in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)

	ZeroScoreResults = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "movierec_zero_score_results_total",
			Help: "Total number of returned results with similarity 0",
		},
	)

	DatasetRowsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "movierec_dataset_rows_total",
			Help: "Total number of raw review rows read",
		},
	)

	DatasetLoadErrors = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "movierec_dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
	)

	CorpusItems = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "movierec_corpus_items",
			Help: "Number of distinct items in the current corpus",
		},
	)
)

// WriteTextfile writes every registered metric to path.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
