// Package service implements the event catalog and the registration ledger:
// validation, the capacity rule, and orchestration over the shared store.
package service

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/Shivanand-hulikatti/event-registry/internal/model"
	"github.com/Shivanand-hulikatti/event-registry/internal/repository"
)

// EventCatalog creates events and answers capacity queries.
type EventCatalog struct {
	store *repository.Store
	opts  options
}

// NewEventCatalog constructs an EventCatalog over store.
func NewEventCatalog(store *repository.Store, opts ...Option) *EventCatalog {
	return &EventCatalog{store: store, opts: applyOptions(opts)}
}

// CreateEvent validates the request and stores a new event with no registrations.
// Names are not unique: a repeated name yields a distinct event with its own id.
func (c *EventCatalog) CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Club = strings.TrimSpace(req.Club)
	req.Date = strings.TrimSpace(req.Date)
	req.Type = strings.TrimSpace(req.Type)

	switch {
	case req.Name == "":
		return model.Event{}, fmt.Errorf("%w: event name is required", model.ErrInvalidArgument)
	case req.Club == "":
		return model.Event{}, fmt.Errorf("%w: club is required", model.ErrInvalidArgument)
	case req.Date == "":
		return model.Event{}, fmt.Errorf("%w: date is required", model.ErrInvalidArgument)
	case req.Type == "":
		return model.Event{}, fmt.Errorf("%w: event type is required", model.ErrInvalidArgument)
	case req.Capacity < 0:
		return model.Event{}, fmt.Errorf("%w: capacity must not be negative", model.ErrInvalidArgument)
	}

	event := model.Event{
		ID:        c.opts.newID(),
		Name:      req.Name,
		Club:      req.Club,
		Date:      req.Date,
		Type:      req.Type,
		Capacity:  req.Capacity,
		CreatedAt: c.opts.clock.Now(),
	}
	if err := c.store.InsertEvent(ctx, event); err != nil {
		return model.Event{}, fmt.Errorf("create event: %w", err)
	}

	c.opts.metrics.EventCreated()
	c.opts.logger.InfoContext(ctx, "event created",
		"event_id", event.ID,
		"name", event.Name,
		"capacity", event.Capacity,
	)
	return event, nil
}

// GetEvent returns a snapshot of a single event.
func (c *EventCatalog) GetEvent(ctx context.Context, id string) (model.Event, error) {
	if strings.TrimSpace(id) == "" {
		return model.Event{}, fmt.Errorf("%w: event id is required", model.ErrInvalidArgument)
	}
	return c.store.GetEvent(ctx, id)
}

// ListEvents returns the events as they were at call time, in creation order.
// The sequence can be ranged over any number of times; call ListEvents again
// to observe later changes.
func (c *EventCatalog) ListEvents(ctx context.Context) (iter.Seq[model.Event], error) {
	events, err := c.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return slices.Values(events), nil
}

// RemainingCapacity returns capacity minus registered count for id.
func (c *EventCatalog) RemainingCapacity(ctx context.Context, id string) (int, error) {
	e, err := c.GetEvent(ctx, id)
	if err != nil {
		return 0, err
	}
	return e.Remaining(), nil
}

// State reports whether the event is OPEN or FULL.
func (c *EventCatalog) State(ctx context.Context, id string) (model.CapacityState, error) {
	e, err := c.GetEvent(ctx, id)
	if err != nil {
		return "", err
	}
	return e.State(), nil
}

// Stats totals the catalog from a single snapshot, so AvailableSlots plus
// Registrations always equals the summed capacity.
func (c *EventCatalog) Stats(ctx context.Context) (model.Stats, error) {
	events, err := c.store.ListEvents(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("stats: %w", err)
	}

	st := model.Stats{TotalEvents: len(events)}
	for _, e := range events {
		st.AvailableSlots += e.Remaining()
		st.Registrations += e.RegisteredCount
	}
	return st, nil
}

// ParseCapacity converts user input into a capacity. Non-numeric and negative
// values are rejected with model.ErrInvalidArgument.
func ParseCapacity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: capacity %q is not a number", model.ErrInvalidArgument, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: capacity must not be negative", model.ErrInvalidArgument)
	}
	return n, nil
}
