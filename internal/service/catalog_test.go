package service

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/event-registry/internal/clock"
	"github.com/Shivanand-hulikatti/event-registry/internal/model"
	"github.com/Shivanand-hulikatti/event-registry/internal/repository"
	"github.com/Shivanand-hulikatti/event-registry/internal/seed"
)

var testNow = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestServices(t *testing.T) (*EventCatalog, *RegistrationLedger) {
	t.Helper()
	store := repository.NewStore()
	catalog := NewEventCatalog(store,
		WithClock(clock.NewFixed(testNow)),
		WithIDGenerator(sequentialIDs("evt")),
	)
	ledger := NewRegistrationLedger(catalog,
		WithClock(clock.NewFixed(testNow)),
		WithIDGenerator(sequentialIDs("reg")),
	)
	return catalog, ledger
}

func validRequest(name string, capacity int) model.CreateEventRequest {
	return model.CreateEventRequest{
		Name:     name,
		Club:     "Computer Science Club",
		Date:     "2024-07-15",
		Type:     "Conference",
		Capacity: capacity,
	}
}

func TestEventCatalog_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("creates event with zero registrations", func(t *testing.T) {
		catalog, _ := newTestServices(t)

		e, err := catalog.CreateEvent(ctx, model.CreateEventRequest{
			Name:     "  Tech Conference 2024 ",
			Club:     "Computer Science Club",
			Date:     "2024-07-15",
			Type:     "Conference",
			Capacity: 50,
		})
		require.NoError(t, err)

		assert.Equal(t, "evt-1", e.ID)
		assert.Equal(t, "Tech Conference 2024", e.Name)
		assert.Equal(t, 50, e.Capacity)
		assert.Equal(t, 0, e.RegisteredCount)
		assert.Equal(t, testNow, e.CreatedAt)

		got, err := catalog.GetEvent(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e, got)
	})

	t.Run("zero capacity is allowed and starts full", func(t *testing.T) {
		catalog, _ := newTestServices(t)

		e, err := catalog.CreateEvent(ctx, validRequest("Closed Session", 0))
		require.NoError(t, err)

		state, err := catalog.State(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StateFull, state)
	})

	t.Run("duplicate names get distinct ids", func(t *testing.T) {
		catalog, ledger := newTestServices(t)

		first, err := catalog.CreateEvent(ctx, validRequest("Coding Workshop", 5))
		require.NoError(t, err)
		_, err = ledger.Register(ctx, first.ID, "Alice", "A1")
		require.NoError(t, err)

		second, err := catalog.CreateEvent(ctx, validRequest("Coding Workshop", 10))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		n, err := ledger.CountRegistered(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "earlier registrations survive a same-name create")
	})

	invalid := []struct {
		name string
		req  model.CreateEventRequest
	}{
		{"empty name", model.CreateEventRequest{Name: " ", Club: "c", Date: "d", Type: "t", Capacity: 1}},
		{"empty club", model.CreateEventRequest{Name: "n", Date: "d", Type: "t", Capacity: 1}},
		{"empty date", model.CreateEventRequest{Name: "n", Club: "c", Type: "t", Capacity: 1}},
		{"empty type", model.CreateEventRequest{Name: "n", Club: "c", Date: "d", Capacity: 1}},
		{"negative capacity", model.CreateEventRequest{Name: "n", Club: "c", Date: "d", Type: "t", Capacity: -1}},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			catalog, _ := newTestServices(t)

			_, err := catalog.CreateEvent(ctx, tt.req)
			assert.ErrorIs(t, err, model.ErrInvalidArgument)

			events, err := catalog.ListEvents(ctx)
			require.NoError(t, err)
			assert.Empty(t, slices.Collect(events))
		})
	}
}

func TestEventCatalog_GetEventNotFound(t *testing.T) {
	catalog, _ := newTestServices(t)

	_, err := catalog.GetEvent(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = catalog.RemainingCapacity(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = catalog.State(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestEventCatalog_ListEventsIsSnapshot(t *testing.T) {
	ctx := context.Background()
	catalog, ledger := newTestServices(t)

	a, err := catalog.CreateEvent(ctx, validRequest("A", 3))
	require.NoError(t, err)

	seq, err := catalog.ListEvents(ctx)
	require.NoError(t, err)

	_, err = catalog.CreateEvent(ctx, validRequest("B", 3))
	require.NoError(t, err)
	_, err = ledger.Register(ctx, a.ID, "Alice", "A1")
	require.NoError(t, err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Len(t, first, 1, "sequence reflects state at call time")
	assert.Equal(t, 0, first[0].RegisteredCount)
	assert.Equal(t, first, second, "sequence is restartable")

	fresh, err := catalog.ListEvents(ctx)
	require.NoError(t, err)
	now := slices.Collect(fresh)
	require.Len(t, now, 2)
	assert.Equal(t, "A", now[0].Name)
	assert.Equal(t, 1, now[0].RegisteredCount)
	assert.Equal(t, "B", now[1].Name)
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "25", want: 25},
		{in: " 100 ", want: 100},
		{in: "0", want: 0},
		{in: "-3", wantErr: true},
		{in: "fifty", wantErr: true},
		{in: "", wantErr: true},
		{in: "2.5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCapacity(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventCatalog_Stats(t *testing.T) {
	ctx := context.Background()
	catalog, ledger := newTestServices(t)

	st, err := catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{}, st)

	f, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.Apply(ctx, catalog, f)
	require.NoError(t, err)

	st, err = catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{TotalEvents: 3, AvailableSlots: 175, Registrations: 0}, st)

	e, err := catalog.CreateEvent(ctx, validRequest("Tech Conference 2024", 2))
	require.NoError(t, err)
	_, err = ledger.Register(ctx, e.ID, "Alice", "A1")
	require.NoError(t, err)
	_, err = ledger.Register(ctx, e.ID, "Bob", "A2")
	require.NoError(t, err)
	_, err = ledger.Register(ctx, e.ID, "Carol", "A3")
	require.ErrorIs(t, err, model.ErrEventFull)

	st, err = catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{TotalEvents: 4, AvailableSlots: 175, Registrations: 2}, st,
		"the two-slot event adds 2 capacity and consumes 2")
}

func TestEventCatalog_StatsCancelled(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.Stats(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
