// Package metrics exposes Prometheus collectors for booking submissions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elchananT/personal-coach-demo-website/internal/booking"
)

const namespace = "leocoach"

// Metrics holds the booking collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	submissions    *prometheus.CounterVec
	fieldErrors    *prometheus.CounterVec
	transitions    *prometheus.CounterVec
	inFlight       prometheus.Gauge
	submitDuration prometheus.Histogram
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions by channel and outcome (accepted, invalid, failed, cancelled).",
		}, []string{"channel", "outcome"}),
		fieldErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "field_errors_total",
			Help:      "Validation failures per form field.",
		}, []string{"field"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "state_transitions_total",
			Help:      "Form state transitions.",
		}, []string{"from", "to"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "submissions_in_flight",
			Help:      "Forms currently in the submitting state.",
		}),
		submitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "submit_duration_seconds",
			Help:      "Time from submit to a final state, including the simulated delay.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 1.5, 2, 3, 5, 10},
		}),
	}
}

// Outcome labels for ObserveSubmission.
const (
	OutcomeAccepted  = "accepted"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

// ObserveSubmission records one submit attempt and, for invalid ones, the failed fields.
func (m *Metrics) ObserveSubmission(channel, outcome string, fieldErrs map[string]string, took time.Duration) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(channel, outcome).Inc()
	for field := range fieldErrs {
		m.fieldErrors.WithLabelValues(field).Inc()
	}
	if outcome != OutcomeInvalid {
		m.submitDuration.Observe(took.Seconds())
	}
}

// Transition is a booking.WithObserver callback.
func (m *Metrics) Transition(from, to booking.State) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
	switch {
	case to == booking.StateSubmitting:
		m.inFlight.Inc()
	case from == booking.StateSubmitting:
		m.inFlight.Dec()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
