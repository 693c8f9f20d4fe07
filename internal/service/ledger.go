package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/Shivanand-hulikatti/event-registry/internal/clock"
	"github.com/Shivanand-hulikatti/event-registry/internal/model"
)

// AllEvents is the ListRegistrations filter that selects every event.
const AllEvents = ""

// RegistrationLedger performs registrations against catalog events and answers
// queries over the recorded registrations.
type RegistrationLedger struct {
	catalog *EventCatalog
	clock   *clock.Monotonic
	opts    options
}

// NewRegistrationLedger constructs a ledger over the catalog's store.
func NewRegistrationLedger(catalog *EventCatalog, opts ...Option) *RegistrationLedger {
	o := applyOptions(opts)
	return &RegistrationLedger{
		catalog: catalog,
		clock:   clock.NewMonotonic(o.clock),
		opts:    o,
	}
}

// Register admits one participant to eventID if a slot remains.
//
// It fails with model.ErrInvalidArgument, model.ErrNotFound or
// model.ErrEventFull without mutating anything. On success the event counter
// and the new record are committed together.
func (l *RegistrationLedger) Register(ctx context.Context, eventID, studentName, rollNumber string) (model.Registration, error) {
	reg, err := l.register(ctx, eventID, studentName, rollNumber)
	l.opts.metrics.RegisterAttempt(err)

	logger := l.opts.logger.With("event_id", eventID, "roll_number", strings.TrimSpace(rollNumber))
	switch {
	case err == nil:
		logger.InfoContext(ctx, "participant registered", "registration_id", reg.ID)
	case errors.Is(err, model.ErrEventFull):
		logger.InfoContext(ctx, "registration rejected: event full")
	default:
		logger.DebugContext(ctx, "registration rejected", "error", err)
	}
	return reg, err
}

func (l *RegistrationLedger) register(ctx context.Context, eventID, studentName, rollNumber string) (model.Registration, error) {
	studentName = strings.TrimSpace(studentName)
	rollNumber = strings.TrimSpace(rollNumber)
	switch {
	case strings.TrimSpace(eventID) == "":
		return model.Registration{}, fmt.Errorf("%w: event id is required", model.ErrInvalidArgument)
	case studentName == "":
		return model.Registration{}, fmt.Errorf("%w: student name is required", model.ErrInvalidArgument)
	case rollNumber == "":
		return model.Registration{}, fmt.Errorf("%w: roll number is required", model.ErrInvalidArgument)
	}

	filled := false
	reg, err := l.catalog.store.Book(ctx, eventID, func(e model.Event) model.Registration {
		filled = e.Remaining() == 1
		return model.Registration{
			ID:           l.opts.newID(),
			EventID:      e.ID,
			StudentName:  studentName,
			RollNumber:   rollNumber,
			RegisteredAt: l.clock.Now(),
		}
	})
	if err != nil {
		return model.Registration{}, err
	}
	if filled {
		l.opts.metrics.EventFilled()
	}
	return reg, nil
}

// ListRegistrations returns the records for eventID in creation order, or every
// record when eventID is AllEvents (grouped by event in catalog order).
// Like ListEvents, the sequence is a snapshot taken at call time.
func (l *RegistrationLedger) ListRegistrations(ctx context.Context, eventID string) (iter.Seq[model.Registration], error) {
	var (
		regs []model.Registration
		err  error
	)
	if eventID == AllEvents {
		regs, err = l.catalog.store.ListAllRegistrations(ctx)
	} else {
		regs, err = l.catalog.store.ListRegistrations(ctx, eventID)
	}
	if err != nil {
		return nil, err
	}
	return slices.Values(regs), nil
}

// CountRegistered returns the number of records held for eventID. It always
// equals capacity minus remaining capacity for that event.
func (l *RegistrationLedger) CountRegistered(ctx context.Context, eventID string) (int, error) {
	return l.catalog.store.CountRegistrations(ctx, eventID)
}
