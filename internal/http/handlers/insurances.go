package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insurhub/internal/core"
	"insurhub/pkg/problem"
)

const msgNoSuchInsurance = "There is no insurance with this id"

// Mountable is a feature handler that attaches its routes to a router.
type Mountable interface {
	Mount(r chi.Router)
}

// InsuranceHandler serves the CRUD endpoints for one policy kind. One generic
// implementation covers life, property and vehicle; only the payload types
// and the mount path differ.
type InsuranceHandler[R core.Record[R, U], U any, C core.CreationDTO[R]] struct {
	Path string
	Svc  *core.Service[R, U]
	Log  *slog.Logger
}

func NewInsuranceHandler[R core.Record[R, U], U any, C core.CreationDTO[R]](path string, svc *core.Service[R, U], log *slog.Logger) *InsuranceHandler[R, U, C] {
	return &InsuranceHandler[R, U, C]{Path: path, Svc: svc, Log: log}
}

func (h *InsuranceHandler[R, U, C]) Mount(r chi.Router) {
	r.Route(h.Path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns every record of this kind.
// 200: JSON array; 500: internal error.
func (h *InsuranceHandler[R, U, C]) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Svc.ListAll(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list insurances")
		return
	}
	h.encode(w, recs)
}

// Get retrieves one record by id.
// 200: JSON; 404: unknown id; 500: internal error.
func (h *InsuranceHandler[R, U, C]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, msgNoSuchInsurance)
		return
	}
	h.encode(w, rec)
}

// Create stores a new record built from the request payload. The record's
// kind is pinned by this handler's payload type and its id is assigned by
// the store; there is no field validation.
// 200: created record; 400: malformed body; 500: internal error.
func (h *InsuranceHandler[R, U, C]) Create(w http.ResponseWriter, r *http.Request) {
	var dto C
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid Request Body", "Request body must be a valid insurance payload.")
		return
	}

	rec, err := h.Svc.Create(r.Context(), dto.Record())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to create insurance")
		return
	}
	h.encode(w, rec)
}

// Update replaces the record's mutable fields with the payload's. The stored
// record's type and startDate always win over whatever the payload says.
// 200: updated record; 400: malformed body; 404: unknown id.
func (h *InsuranceHandler[R, U, C]) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var upd U
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid Request Body", "Request body must be a valid insurance payload.")
		return
	}

	rec, err := h.Svc.Update(r.Context(), id, upd)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, msgNoSuchInsurance)
		return
	}
	h.encode(w, rec)
}

// Delete removes the record by id. Unknown ids delete nothing and still
// report success.
// 200: empty body; 500: internal error.
func (h *InsuranceHandler[R, U, C]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to delete insurance")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *InsuranceHandler[R, U, C]) encode(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("failed to encode response", "path", h.Path, "err", err)
	}
}
