// internal/app/features/assignments/handler.go
package assignments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eneca-dev/handoff/internal/app/system/filters"
	"github.com/eneca-dev/handoff/internal/app/system/identity"
	"github.com/eneca-dev/handoff/internal/app/system/inputval"
	"github.com/eneca-dev/handoff/internal/app/system/timeouts"
	"github.com/eneca-dev/handoff/internal/domain/models"
	"github.com/eneca-dev/handoff/internal/domain/workflow"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler exposes the assignment operations as a JSON API.
type Handler struct {
	Svc      *Service
	Identity identity.Provider
	Log      *zap.Logger
}

// NewHandler constructs the assignments handler.
func NewHandler(svc *Service, provider identity.Provider, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Identity: provider, Log: logger}
}

// envelope is the uniform response shape. Warnings carry the non-fatal
// outcomes of a committed operation, like a failed audit write.
type envelope struct {
	Data     any      `json:"data"`
	Warnings []string `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// List handles GET /api/assignments.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	views, err := h.Svc.Fetch(ctx, criteria)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: views})
}

// Create handles POST /api/assignments.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	view, err := h.Svc.Create(ctx, h.actor(r), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Data: view})
}

// Update handles PUT /api/assignments/{assignmentID}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	view, warnings, err := h.Svc.Update(ctx, h.actor(r), id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: view, Warnings: warnings})
}

// Advance handles POST /api/assignments/{assignmentID}/advance.
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Svc.Advance)
}

// Revert handles POST /api/assignments/{assignmentID}/revert.
func (h *Handler) Revert(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Svc.Revert)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, identity.Actor, primitive.ObjectID, TransitionInput) (View, error)) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in TransitionInput
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	view, err := op(ctx, h.actor(r), id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: view})
}

// History handles GET /api/assignments/{assignmentID}/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	records, err := h.Svc.History(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if records == nil {
		records = []models.AuditRecord{}
	}
	writeJSON(w, http.StatusOK, envelope{Data: records})
}

// ClearHistory handles DELETE /api/assignments/{assignmentID}/history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Svc.ClearHistory(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: map[string]int64{"deleted": n}})
}

// actor resolves the acting user, degrading to the zero actor when the
// request carries no usable identity. The service decides what that means
// per operation.
func (h *Handler) actor(r *http.Request) identity.Actor {
	actor, err := h.Identity.Actor(r)
	if err != nil {
		return identity.Actor{}
	}
	return actor
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "assignmentID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed assignment id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve *inputval.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field})
		return
	}
	var te *workflow.InvalidTransitionError
	if errors.As(err, &te) {
		writeJSON(w, http.StatusConflict, errorResponse{Error: te.Error()})
		return
	}
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "assignment not found"})
		return
	}
	h.Log.Error("assignments: operation failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

// parseCriteria reads the filter dimensions from the query string.
// Malformed ids are client errors; unknown-but-well-formed ids resolve to
// "matches nothing" downstream.
func parseCriteria(r *http.Request) (filters.Criteria, error) {
	var c filters.Criteria
	q := r.URL.Query()

	ids := []struct {
		param string
		dst   **primitive.ObjectID
	}{
		{"project_id", &c.ProjectID},
		{"stage_id", &c.StageID},
		{"object_id", &c.ObjectID},
		{"department_id", &c.DepartmentID},
		{"team_id", &c.TeamID},
		{"specialist_id", &c.SpecialistID},
	}
	for _, f := range ids {
		raw := q.Get(f.param)
		if raw == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return filters.Criteria{}, &inputval.ValidationError{Field: f.param, Message: "must be a valid id"}
		}
		*f.dst = &id
	}

	if status := q.Get("status"); status != "" {
		if !workflow.Status(status).Valid() {
			return filters.Criteria{}, &inputval.ValidationError{Field: "status", Message: "unknown status"}
		}
		c.Status = status
	}
	return c, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
