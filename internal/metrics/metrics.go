// Package metrics exposes Prometheus collectors for the scan pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/and161185/stampcard/internal/model"
)

const namespace = "stampcard"

// Scan holds the collectors updated once per processed scan.
// A nil *Scan is valid and records nothing.
type Scan struct {
	outcomes    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	redemptions prometheus.Counter
	voids       prometheus.Counter
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which tests use.
func New(reg prometheus.Registerer) *Scan {
	s := &Scan{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Scans processed, by terminal outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Time spent in the scan pipeline.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"outcome"}),
		redemptions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_total",
			Help:      "Scans that completed a card and earned a reward.",
		}),
		voids: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voids_total",
			Help:      "Stamps reverted by an administrator.",
		}),
	}
	if reg != nil {
		reg.MustRegister(s.outcomes, s.duration, s.redemptions, s.voids)
	}
	return s
}

// ObserveScan records the outcome and latency of one scan.
func (s *Scan) ObserveScan(o model.Outcome, elapsed time.Duration, redeemed bool) {
	if s == nil {
		return
	}
	s.outcomes.WithLabelValues(string(o)).Inc()
	s.duration.WithLabelValues(string(o)).Observe(elapsed.Seconds())
	if redeemed {
		s.redemptions.Inc()
	}
}

// ObserveVoid counts one reverted stamp.
func (s *Scan) ObserveVoid() {
	if s == nil {
		return
	}
	s.voids.Inc()
}
