// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the event catalog and registration ledger.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/event-registry/internal/model"
	"github.com/Shivanand-hulikatti/event-registry/internal/service"
)

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

// EventHandler holds all HTTP handlers for the event registration API.
type EventHandler struct {
	catalog Catalog
	ledger  Ledger
	logger  *slog.Logger
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(catalog Catalog, ledger Ledger, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EventHandler{catalog: catalog, ledger: ledger, logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeDomainError maps core errors to HTTP status codes.
func (h *EventHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "event not found")
	case errors.Is(err, model.ErrEventFull):
		writeError(w, http.StatusConflict, "event is fully booked")
	default:
		h.logger.ErrorContext(r.Context(), op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to "+op)
	}
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.catalog.CreateEvent(r.Context(), req)
	if err != nil {
		h.writeDomainError(w, r, err, "create event")
		return
	}

	writeJSON(w, http.StatusCreated, model.NewEventView(event))
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.catalog.ListEvents(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err, "list events")
		return
	}

	// Empty array rather than null.
	views := []model.EventView{}
	for e := range events {
		views = append(views, model.NewEventView(e))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetEvent handles GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.catalog.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, err, "get event")
		return
	}

	writeJSON(w, http.StatusOK, model.NewEventView(event))
}

// Register handles POST /events/{id}/register
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reg, err := h.ledger.Register(r.Context(), chi.URLParam(r, "id"), req.StudentName, req.RollNumber)
	if err != nil {
		h.writeDomainError(w, r, err, "register")
		return
	}

	writeJSON(w, http.StatusCreated, reg)
}

// ListRegistrations handles GET /events/{id}/registrations
func (h *EventHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	h.listRegistrations(w, r, chi.URLParam(r, "id"))
}

// ListAllRegistrations handles GET /registrations
func (h *EventHandler) ListAllRegistrations(w http.ResponseWriter, r *http.Request) {
	h.listRegistrations(w, r, service.AllEvents)
}

func (h *EventHandler) listRegistrations(w http.ResponseWriter, r *http.Request, eventID string) {
	regs, err := h.ledger.ListRegistrations(r.Context(), eventID)
	if err != nil {
		h.writeDomainError(w, r, err, "list registrations")
		return
	}

	out := []model.Registration{}
	for reg := range regs {
		out = append(out, reg)
	}
	writeJSON(w, http.StatusOK, out)
}

// Stats handles GET /stats
func (h *EventHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.catalog.Stats(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err, "load stats")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
