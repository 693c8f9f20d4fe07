// Package repository holds the in-memory store shared by the event catalog and
// the registration ledger. State lives for the lifetime of the process.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Shivanand-hulikatti/event-registry/internal/model"
)

// Store owns two keyed collections: events by id and registrations by event id.
// All access goes through one RWMutex; queries return copies, never live views.
type Store struct {
	mu            sync.RWMutex
	events        map[string]*model.Event
	order         []string
	registrations map[string][]model.Registration
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		events:        make(map[string]*model.Event),
		registrations: make(map[string][]model.Registration),
	}
}

// InsertEvent stores a new event with an empty registration list.
// Ids must be unique; an existing id is never overwritten.
func (s *Store) InsertEvent(ctx context.Context, e model.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[e.ID]; exists {
		return fmt.Errorf("insert event: duplicate id %q", e.ID)
	}
	stored := e
	s.events[e.ID] = &stored
	s.order = append(s.order, e.ID)
	s.registrations[e.ID] = nil
	return nil
}

// GetEvent returns a snapshot of a single event or model.ErrNotFound.
func (s *Store) GetEvent(ctx context.Context, id string) (model.Event, error) {
	if err := ctx.Err(); err != nil {
		return model.Event{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return model.Event{}, model.ErrNotFound
	}
	return *e, nil
}

// ListEvents returns snapshots of all events in creation order.
func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.events[id])
	}
	return out, nil
}

// Book performs the register transaction for eventID.
//
// The capacity check, the counter increment and the append of the record built
// by newReg all happen under the write lock, so no reader can observe the
// counter and the record list out of step. newReg is called only when a slot
// is available and must not call back into the Store.
func (s *Store) Book(ctx context.Context, eventID string, newReg func(model.Event) model.Registration) (model.Registration, error) {
	if err := ctx.Err(); err != nil {
		return model.Registration{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return model.Registration{}, model.ErrNotFound
	}
	if e.IsFull() {
		return model.Registration{}, model.ErrEventFull
	}

	reg := newReg(*e)
	reg.EventID = eventID

	e.RegisteredCount++
	s.registrations[eventID] = append(s.registrations[eventID], reg)
	return reg, nil
}

// ListRegistrations returns the records of one event in insertion order.
func (s *Store) ListRegistrations(ctx context.Context, eventID string) ([]model.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return nil, model.ErrNotFound
	}
	regs := s.registrations[eventID]
	out := make([]model.Registration, len(regs))
	copy(out, regs)
	return out, nil
}

// ListAllRegistrations returns every record, grouped by event in creation order.
func (s *Store) ListAllRegistrations(ctx context.Context) ([]model.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Registration
	for _, id := range s.order {
		out = append(out, s.registrations[id]...)
	}
	return out, nil
}

// CountRegistrations returns the number of records held for eventID.
func (s *Store) CountRegistrations(ctx context.Context, eventID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return 0, model.ErrNotFound
	}
	return len(s.registrations[eventID]), nil
}
