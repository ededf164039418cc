package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insurhub/internal/core"
	"insurhub/pkg/problem"
)

// SearchHandler serves name lookups. A single-kind search answers with a flat
// list, an all-kinds search with per-kind groups.
type SearchHandler struct {
	Svc *core.SearchService
	Log *slog.Logger
}

func NewSearchHandler(svc *core.SearchService, log *slog.Logger) *SearchHandler {
	return &SearchHandler{Svc: svc, Log: log}
}

func (h *SearchHandler) Mount(r chi.Router) {
	r.Get("/search", h.Search)
}

// Search matches records whose holder name equals the query ignoring case.
// Query params: firstName, familyName (at least one required), type
// (life|property|vehicle|all, default all).
// 200: matches (possibly empty); 400: no name given or unknown type.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	firstName := q.Get("firstName")
	familyName := q.Get("familyName")

	if firstName == "" && familyName == "" {
		problem.Write(w, http.StatusBadRequest, "Invalid Search Criteria",
			"At least one of firstName or familyName must be provided")
		return
	}

	kind, err := core.ParseSearchKind(q.Get("type"))
	if err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid Insurance Type", "Invalid insurance type")
		return
	}

	var result any
	switch kind {
	case core.SearchLife:
		result, err = h.Svc.SearchLifeByName(r.Context(), firstName, familyName)
	case core.SearchProperty:
		result, err = h.Svc.SearchPropertyByName(r.Context(), firstName, familyName)
	case core.SearchVehicle:
		result, err = h.Svc.SearchVehicleByName(r.Context(), firstName, familyName)
	default:
		result, err = h.Svc.SearchAllByName(r.Context(), firstName, familyName)
	}
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to search insurances")
		return
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Log.Error("failed to encode search result", "err", err)
	}
}
