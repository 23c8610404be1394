// Package metrics exposes the solve pipeline's Prometheus
// instrumentation: per-phase duration and the terminal outcome of each
// solve run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry bundles the collectors the solve pipeline updates. Callers
// register it once against a prometheus.Registerer and pass it
// through the pipeline.
type Registry struct {
	PhaseDuration *prometheus.HistogramVec
	SolveOutcomes *prometheus.CounterVec
}

// NewRegistry constructs and registers the pipeline's collectors
// against reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)
	return &Registry{
		PhaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "timetable",
			Subsystem: "solve",
			Name:      "phase_duration_seconds",
			Help:      "Wall-clock duration of each solve phase.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase"}),
		SolveOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "timetable",
			Subsystem: "solve",
			Name:      "outcomes_total",
			Help:      "Count of solve runs by terminal outcome.",
		}, []string{"outcome"}),
	}
}
