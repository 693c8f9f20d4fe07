package model

import "errors"

// Domain errors. Callers match them with errors.Is; detail is added by wrapping.
var (
	// ErrInvalidArgument is returned for a missing field or a non-numeric/negative capacity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a requested event does not exist.
	ErrNotFound = errors.New("event not found")

	// ErrEventFull is returned when an event has no remaining capacity.
	ErrEventFull = errors.New("event is full")
)
