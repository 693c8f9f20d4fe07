// Package shell implements the operator command interpreter: a line-oriented
// front end over the event catalog and the registration ledger.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/Shivanand-hulikatti/event-registry/internal/model"
	"github.com/Shivanand-hulikatti/event-registry/internal/service"
)

// ErrQuit is returned by Execute when the operator asks to leave.
var ErrQuit = errors.New("quit")

// Catalog is the event side of the core interface.
type Catalog interface {
	CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.Event, error)
	GetEvent(ctx context.Context, id string) (model.Event, error)
	ListEvents(ctx context.Context) (iter.Seq[model.Event], error)
	Stats(ctx context.Context) (model.Stats, error)
}

// Ledger is the registration side of the core interface.
type Ledger interface {
	Register(ctx context.Context, eventID, studentName, rollNumber string) (model.Registration, error)
	ListRegistrations(ctx context.Context, eventID string) (iter.Seq[model.Registration], error)
}

const (
	msgFillAllFields = "Please fill in all fields."
	msgBadSlots      = "Please enter a valid number for slots."
	msgEventCreated  = "Event created successfully!"
	msgEventFull     = "Sorry, this event is full!"
	msgEventNotFound = "Event not found."
)

const helpText = `Commands:
  events                                          list all events
  show <event>                                    show one event
  create <name> | <club> | <date> | <type> | <slots>
                                                  create an event
  register <event> | <roll number> | <name>       register a student
  registrations [event]                           list registrations (all events if omitted)
  stats                                           show catalog totals
  help                                            show this help
  quit                                            leave the shell
<event> is an event id or an unambiguous event name.
`

// Shell executes one command line at a time and writes results to out.
type Shell struct {
	catalog Catalog
	ledger  Ledger
	out     io.Writer
	ok      *color.Color
	fail    *color.Color
}

// New constructs a Shell writing to out.
func New(catalog Catalog, ledger Ledger, out io.Writer) *Shell {
	return &Shell{
		catalog: catalog,
		ledger:  ledger,
		out:     out,
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
	}
}

// Execute runs a single command line. User mistakes are reported on out and
// return nil; only ErrQuit and unexpected failures are returned.
func (s *Shell) Execute(ctx context.Context, line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "":
		return nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return nil
	case "quit", "exit":
		return ErrQuit
	case "events", "ls":
		return s.listEvents(ctx)
	case "show":
		return s.showEvent(ctx, rest)
	case "create":
		return s.createEvent(ctx, rest)
	case "register":
		return s.register(ctx, rest)
	case "registrations", "regs":
		return s.listRegistrations(ctx, rest)
	case "stats":
		return s.stats(ctx)
	default:
		s.fail.Fprintf(s.out, "Unknown command %q. Type \"help\" for a list of commands.\n", cmd)
		return nil
	}
}

// fields splits a "|"-separated argument list and trims each part.
func fields(args string) []string {
	if args == "" {
		return nil
	}
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func anyEmpty(parts []string) bool {
	for _, p := range parts {
		if p == "" {
			return true
		}
	}
	return false
}

func (s *Shell) listEvents(ctx context.Context) error {
	events, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCLUB\tDATE\tTYPE\tAVAILABLE\tREGISTERED")
	n := 0
	for e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			e.ID, e.Name, e.Club, e.Date, e.Type, e.Remaining(), e.RegisteredCount)
		n++
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(s.out, "No events yet.")
	}
	return nil
}

func (s *Shell) showEvent(ctx context.Context, arg string) error {
	if arg == "" {
		s.fail.Fprintln(s.out, "Usage: show <event>")
		return nil
	}
	e, err := s.resolveEvent(ctx, arg)
	if err != nil {
		return s.report(err)
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", e.ID)
	fmt.Fprintf(tw, "Event:\t%s\n", e.Name)
	fmt.Fprintf(tw, "Club:\t%s\n", e.Club)
	fmt.Fprintf(tw, "Date:\t%s\n", e.Date)
	fmt.Fprintf(tw, "Type:\t%s\n", e.Type)
	fmt.Fprintf(tw, "Available slots:\t%d of %d\n", e.Remaining(), e.Capacity)
	fmt.Fprintf(tw, "Status:\t%s\n", e.State())
	return tw.Flush()
}

func (s *Shell) createEvent(ctx context.Context, args string) error {
	parts := fields(args)
	if len(parts) != 5 || anyEmpty(parts) {
		s.fail.Fprintln(s.out, msgFillAllFields)
		return nil
	}

	capacity, err := service.ParseCapacity(parts[4])
	if err != nil {
		s.fail.Fprintln(s.out, msgBadSlots)
		return nil
	}

	e, err := s.catalog.CreateEvent(ctx, model.CreateEventRequest{
		Name:     parts[0],
		Club:     parts[1],
		Date:     parts[2],
		Type:     parts[3],
		Capacity: capacity,
	})
	if err != nil {
		return s.report(err)
	}
	s.ok.Fprintf(s.out, "%s (id %s)\n", msgEventCreated, e.ID)
	return nil
}

func (s *Shell) register(ctx context.Context, args string) error {
	parts := fields(args)
	if len(parts) != 3 || anyEmpty(parts) {
		s.fail.Fprintln(s.out, msgFillAllFields)
		return nil
	}

	e, err := s.resolveEvent(ctx, parts[0])
	if err != nil {
		return s.report(err)
	}
	if _, err := s.ledger.Register(ctx, e.ID, parts[2], parts[1]); err != nil {
		return s.report(err)
	}
	s.ok.Fprintf(s.out, "Registration successful for %s!\n", e.Name)
	return nil
}

func (s *Shell) listRegistrations(ctx context.Context, arg string) error {
	eventID := service.AllEvents
	if arg != "" {
		e, err := s.resolveEvent(ctx, arg)
		if err != nil {
			return s.report(err)
		}
		eventID = e.ID
	}

	regs, err := s.ledger.ListRegistrations(ctx, eventID)
	if err != nil {
		return s.report(err)
	}

	names := make(map[string]string)
	if events, err := s.catalog.ListEvents(ctx); err == nil {
		for e := range events {
			names[e.ID] = e.Name
		}
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLL NUMBER\tSTUDENT NAME\tEVENT\tREGISTERED AT")
	n := 0
	for r := range regs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.RollNumber, r.StudentName, names[r.EventID], r.RegisteredAt.Format("2006-01-02 15:04:05"))
		n++
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(s.out, "No registrations yet.")
	}
	return nil
}

func (s *Shell) stats(ctx context.Context) error {
	st, err := s.catalog.Stats(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Events:\t%d\n", st.TotalEvents)
	fmt.Fprintf(tw, "Available Slots:\t%d\n", st.AvailableSlots)
	fmt.Fprintf(tw, "Registrations:\t%d\n", st.Registrations)
	return tw.Flush()
}

// resolveEvent accepts an event id, or a name matching exactly one event.
func (s *Shell) resolveEvent(ctx context.Context, ref string) (model.Event, error) {
	e, err := s.catalog.GetEvent(ctx, ref)
	if err == nil || !errors.Is(err, model.ErrNotFound) {
		return e, err
	}

	events, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return model.Event{}, err
	}
	var matches []model.Event
	for e := range events {
		if strings.EqualFold(e.Name, ref) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return model.Event{}, model.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return model.Event{}, fmt.Errorf("%w: %d events are named %q, use the event id", model.ErrInvalidArgument, len(matches), ref)
	}
}

// report prints domain errors for the operator and passes through anything else.
func (s *Shell) report(err error) error {
	switch {
	case errors.Is(err, model.ErrEventFull):
		s.fail.Fprintln(s.out, msgEventFull)
	case errors.Is(err, model.ErrNotFound):
		s.fail.Fprintln(s.out, msgEventNotFound)
	case errors.Is(err, model.ErrInvalidArgument):
		s.fail.Fprintln(s.out, "Error: "+err.Error())
	default:
		return err
	}
	return nil
}
