// Package metrics records engine activity as Prometheus metrics
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mpn"

// Recorder registers the engine metrics on a caller-supplied registerer
type Recorder struct {
	classifications *prometheus.CounterVec
	unknown         prometheus.Counter
	ambiguous       prometheus.Counter
	comparisons     *prometheus.CounterVec
	compareDuration *prometheus.HistogramVec
	bomLines        *prometheus.CounterVec
}

// NewRecorder creates the metrics and registers them on reg. Registering
// twice on the same registerer panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		classifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classifications_total",
				Help:      "Total number of classified MPNs by component type and pattern scope",
			},
			[]string{"type", "scope"},
		),
		unknown: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_total",
			Help:      "Total number of MPNs no pattern matched",
		}),
		ambiguous: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ambiguous_total",
			Help:      "Total number of classifications with more than one candidate",
		}),
		comparisons: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "comparisons_total",
				Help:      "Total number of similarity comparisons by category and outcome",
			},
			[]string{"category", "compatible"},
		),
		compareDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "comparison_duration_seconds",
				Help:      "Time taken to compare two MPNs",
				Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
			},
			[]string{"category"},
		),
		bomLines: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bom_lines_checked_total",
				Help:      "Total number of BOM lines checked by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordClassification counts a classification. An empty scope is the
// generic pattern set.
func (r *Recorder) RecordClassification(componentType, scope string, ambiguous bool) {
	if scope == "" {
		scope = "generic"
	}
	r.classifications.WithLabelValues(componentType, scope).Inc()
	if ambiguous {
		r.ambiguous.Inc()
	}
}

// RecordUnknown counts an MPN that could not be classified
func (r *Recorder) RecordUnknown() {
	r.unknown.Inc()
}

// RecordComparison counts a comparison and observes its duration
func (r *Recorder) RecordComparison(category string, compatible bool, duration time.Duration) {
	outcome := "false"
	if compatible {
		outcome = "true"
	}
	r.comparisons.WithLabelValues(category, outcome).Inc()
	r.compareDuration.WithLabelValues(category).Observe(duration.Seconds())
}

// RecordBOMLine counts a checked BOM line; outcome is ok, warning or error
func (r *Recorder) RecordBOMLine(outcome string) {
	r.bomLines.WithLabelValues(outcome).Inc()
}
