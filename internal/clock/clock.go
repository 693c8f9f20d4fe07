// Package clock provides the time source used by the registration ledger.
package clock

import (
	"sync"
	"time"
)

// Clock allows injecting time in services.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// Monotonic wraps a clock so that successive readings never go backwards,
// even if the underlying wall clock is adjusted.
type Monotonic struct {
	mu   sync.Mutex
	base Clock
	last time.Time
}

// NewMonotonic returns a non-decreasing view of base.
func NewMonotonic(base Clock) *Monotonic {
	return &Monotonic{base: base}
}

func (m *Monotonic) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.base.Now()
	if now.Before(m.last) {
		return m.last
	}
	m.last = now
	return now
}
