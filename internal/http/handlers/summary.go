package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insurhub/internal/core"
)

// SummaryHandler serves portfolio aggregates.
type SummaryHandler struct {
	Svc *core.SummaryService
	Log *slog.Logger
}

func NewSummaryHandler(svc *core.SummaryService, log *slog.Logger) *SummaryHandler {
	return &SummaryHandler{Svc: svc, Log: log}
}

func (h *SummaryHandler) Mount(r chi.Router) {
	r.Route("/summary", func(r chi.Router) {
		r.Get("/", h.Summary)
		r.Get("/total-amount", h.TotalAmount)
	})
}

// Summary returns the premium total plus per-kind record counts.
// 200: JSON; 500: internal error.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Summary(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to compute summary")
		return
	}
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		h.Log.Error("failed to encode summary", "err", err)
	}
}

// TotalAmount returns the portfolio-wide premium total as a bare decimal.
// 200: JSON number; 500: internal error.
func (h *SummaryHandler) TotalAmount(w http.ResponseWriter, r *http.Request) {
	total, err := h.Svc.TotalPremium(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to compute total amount")
		return
	}
	if err := json.NewEncoder(w).Encode(total); err != nil {
		h.Log.Error("failed to encode total amount", "err", err)
	}
}
