package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type scriptedClock struct {
	times []time.Time
	i     int
}

func (s *scriptedClock) Now() time.Time {
	t := s.times[s.i]
	if s.i < len(s.times)-1 {
		s.i++
	}
	return t
}

func TestMonotonic_NeverGoesBackwards(t *testing.T) {
	t0 := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	base := &scriptedClock{times: []time.Time{
		t0,
		t0.Add(2 * time.Second),
		t0.Add(1 * time.Second),
		t0.Add(3 * time.Second),
	}}
	m := NewMonotonic(base)

	got := []time.Time{m.Now(), m.Now(), m.Now(), m.Now()}

	assert.Equal(t, t0, got[0])
	assert.Equal(t, t0.Add(2*time.Second), got[1])
	assert.Equal(t, t0.Add(2*time.Second), got[2], "wall clock stepped back")
	assert.Equal(t, t0.Add(3*time.Second), got[3])
}

func TestNewFixed_ReturnsUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	c := NewFixed(time.Date(2024, 8, 20, 18, 0, 0, 0, loc))

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, c.Now(), c.Now())
}
