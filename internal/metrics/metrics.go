// Package metrics exposes Prometheus collectors for catalog and ledger activity.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Shivanand-hulikatti/event-registry/internal/model"
)

// Registration outcomes used as the "outcome" label.
const (
	OutcomeRegistered = "registered"
	OutcomeFull       = "full"
	OutcomeNotFound   = "not_found"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
)

// Metrics holds the collectors updated by the services. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	eventsCreated prometheus.Counter
	registrations *prometheus.CounterVec
	eventsFull    prometheus.Counter
}

// MustNewMetrics constructs Metrics and registers them with reg. Registration
// errors panic, mirroring promauto. Pass a fresh registry in tests.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		eventsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_registry",
			Subsystem: "catalog",
			Name:      "events_created_total",
			Help:      "Number of events created, including seeded events.",
		}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_registry",
			Subsystem: "ledger",
			Name:      "registrations_total",
			Help:      "Register attempts by outcome.",
		}, []string{"outcome"}),
		eventsFull: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_registry",
			Subsystem: "ledger",
			Name:      "events_filled_total",
			Help:      "Number of events that moved from OPEN to FULL.",
		}),
	}
	reg.MustRegister(m.eventsCreated, m.registrations, m.eventsFull)
	return m
}

// EventCreated records a successful create.
func (m *Metrics) EventCreated() {
	if m == nil {
		return
	}
	m.eventsCreated.Inc()
}

// RegisterAttempt records the outcome of one register call.
func (m *Metrics) RegisterAttempt(err error) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(Outcome(err)).Inc()
}

// EventFilled records an OPEN to FULL transition.
func (m *Metrics) EventFilled() {
	if m == nil {
		return
	}
	m.eventsFull.Inc()
}

// Outcome maps a register error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeRegistered
	case errors.Is(err, model.ErrEventFull):
		return OutcomeFull
	case errors.Is(err, model.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, model.ErrInvalidArgument):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
