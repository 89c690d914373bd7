// Package metrics records solver activity as Prometheus metrics.
//
// Recorder implements dp.Observer. Each Recorder owns its registry, so
// tests and repeated CLI runs never collide on the global default registry.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/invdp/dp"
)

// Metric names.
const (
	StatesEvaluatedName = "invdp_states_evaluated_total"
	MemoHitsName        = "invdp_memo_hits_total"
	SolveDurationName   = "invdp_solve_duration_seconds"

	strategyLabel = "strategy"
)

// Recorder counts evaluated states and memo hits per strategy and observes
// solve durations. Safe for concurrent use.
type Recorder struct {
	registry  *prometheus.Registry
	evaluated *prometheus.CounterVec
	hits      *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ dp.Observer = (*Recorder)(nil)

// NewRecorder registers the solver metrics on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: StatesEvaluatedName,
			Help: "Number of DP states whose recurrence was evaluated.",
		}, []string{strategyLabel}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MemoHitsName,
			Help: "Number of state lookups answered from the memo.",
		}, []string{strategyLabel}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    SolveDurationName,
			Help:    "Wall-clock duration of a complete solve.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{strategyLabel}),
	}
	r.registry.MustRegister(r.evaluated, r.hits, r.duration)

	return r
}

// StateEvaluated implements dp.Observer.
func (r *Recorder) StateEvaluated(s dp.Strategy) {
	r.evaluated.WithLabelValues(s.String()).Inc()
}

// CacheHit implements dp.Observer.
func (r *Recorder) CacheHit(s dp.Strategy) {
	r.hits.WithLabelValues(s.String()).Inc()
}

// SolveFinished implements dp.Observer.
func (r *Recorder) SolveFinished(s dp.Strategy, d time.Duration) {
	r.duration.WithLabelValues(s.String()).Observe(d.Seconds())
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText writes every metric family in the Prometheus text exposition
// format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
