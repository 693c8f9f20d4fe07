// Package model defines the core domain types for the event registration system.
package model

import "time"

// CapacityState reports whether an event still admits registrations.
type CapacityState string

const (
	StateOpen CapacityState = "OPEN"
	StateFull CapacityState = "FULL"
)

// Event represents an activity with a fixed participant capacity.
// Name is a display attribute only; ID is the identity.
type Event struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Club            string    `json:"club"`
	Date            string    `json:"date"`
	Type            string    `json:"type"`
	Capacity        int       `json:"capacity"`
	RegisteredCount int       `json:"registered_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// Remaining returns the number of available slots.
func (e *Event) Remaining() int {
	return e.Capacity - e.RegisteredCount
}

// IsFull returns true when no slots remain.
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.Capacity
}

// State returns StateFull once the last slot is taken.
func (e *Event) State() CapacityState {
	if e.IsFull() {
		return StateFull
	}
	return StateOpen
}

// Registration binds one participant to one event. It is never mutated after creation.
type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	StudentName  string    `json:"student_name"`
	RollNumber   string    `json:"roll_number"`
	RegisteredAt time.Time `json:"registered_at"`
}

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Name     string `json:"name"`
	Club     string `json:"club"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// RegisterRequest is the payload for registering for an event.
type RegisterRequest struct {
	StudentName string `json:"student_name"`
	RollNumber  string `json:"roll_number"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EventView is the read model returned by the HTTP API: the event plus its
// derived capacity figures.
type EventView struct {
	Event
	Remaining int           `json:"remaining"`
	State     CapacityState `json:"state"`
}

// NewEventView derives the read model for e.
func NewEventView(e Event) EventView {
	return EventView{Event: e, Remaining: e.Remaining(), State: e.State()}
}

// Stats summarises the whole catalog.
type Stats struct {
	TotalEvents    int `json:"total_events"`
	AvailableSlots int `json:"available_slots"`
	Registrations  int `json:"registrations"`
}
