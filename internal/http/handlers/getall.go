package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insurhub/internal/core"
)

// AllInsurancesHandler serves the cross-kind read endpoints: the grouped
// getall response and the flat finder that locates a record without knowing
// its kind.
type AllInsurancesHandler struct {
	Life     *core.LifeService
	Property *core.PropertyService
	Vehicle  *core.VehicleService
	Finder   *core.FinderService
	Log      *slog.Logger
}

func NewAllInsurancesHandler(life *core.LifeService, property *core.PropertyService, vehicle *core.VehicleService, finder *core.FinderService, log *slog.Logger) *AllInsurancesHandler {
	return &AllInsurancesHandler{Life: life, Property: property, Vehicle: vehicle, Finder: finder, Log: log}
}

func (h *AllInsurancesHandler) Mount(r chi.Router) {
	r.Get("/getall", h.GetAllGrouped)
	r.Route("/insurances", func(r chi.Router) {
		r.Get("/", h.GetAllFlat)
		r.Get("/{id}", h.GetByID)
	})
}

// GetAllGrouped returns every record, one list per kind.
// 200: JSON object with three arrays; 500: internal error.
func (h *AllInsurancesHandler) GetAllGrouped(w http.ResponseWriter, r *http.Request) {
	life, err := h.Life.ListAll(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Error fetching insurances")
		return
	}
	property, err := h.Property.ListAll(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Error fetching insurances")
		return
	}
	vehicle, err := h.Vehicle.ListAll(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Error fetching insurances")
		return
	}

	h.encode(w, core.AllInsurancesResponse{
		LifeInsurances:     life,
		PropertyInsurances: property,
		VehicleInsurances:  vehicle,
	})
}

// GetAllFlat returns every record of every kind as one list.
// 200: JSON array; 500: internal error.
func (h *AllInsurancesHandler) GetAllFlat(w http.ResponseWriter, r *http.Request) {
	all, err := h.Finder.GetAll(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Error fetching insurances")
		return
	}
	if all == nil {
		all = []core.AnyInsurance{}
	}
	h.encode(w, all)
}

// GetByID locates a record by id across all three kinds.
// 200: JSON; 404: no kind has the id.
func (h *AllInsurancesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Finder.GetByID(r.Context(), id)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, msgNoSuchInsurance)
		return
	}
	h.encode(w, rec)
}

func (h *AllInsurancesHandler) encode(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("failed to encode response", "err", err)
	}
}
