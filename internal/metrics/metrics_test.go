package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Shivanand-hulikatti/event-registry/internal/model"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeRegistered},
		{model.ErrEventFull, OutcomeFull},
		{fmt.Errorf("register: %w", model.ErrNotFound), OutcomeNotFound},
		{fmt.Errorf("%w: student name is required", model.ErrInvalidArgument), OutcomeInvalid},
		{errors.New("boom"), OutcomeError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err))
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	m.EventCreated()
	m.EventCreated()
	m.RegisterAttempt(nil)
	m.RegisterAttempt(model.ErrEventFull)
	m.RegisterAttempt(model.ErrEventFull)
	m.EventFilled()

	assert.InDelta(t, 2, testutil.ToFloat64(m.eventsCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.registrations.WithLabelValues(OutcomeRegistered)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.registrations.WithLabelValues(OutcomeFull)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.eventsFull), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.EventCreated()
		m.RegisterAttempt(nil)
		m.EventFilled()
	})
}
