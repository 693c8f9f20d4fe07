package service

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-registry/internal/clock"
	"github.com/Shivanand-hulikatti/event-registry/internal/metrics"
)

type options struct {
	clock   clock.Clock
	newID   func() string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures an EventCatalog or a RegistrationLedger.
type Option func(*options)

func defaultOptions() options {
	return options{
		clock:  clock.NewSystem(),
		newID:  uuid.NewString,
		logger: slog.New(slog.DiscardHandler),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock overrides the time source.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithIDGenerator overrides how event and registration ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
