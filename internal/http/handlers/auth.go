package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insurhub/internal/middleware"
	"insurhub/pkg/problem"
)

// AuthHandler reports the caller's identity. The login itself happens in the
// auth middleware; this endpoint only echoes what the middleware resolved.
type AuthHandler struct {
	Log *slog.Logger
}

func NewAuthHandler(log *slog.Logger) *AuthHandler {
	return &AuthHandler{Log: log}
}

func (h *AuthHandler) Mount(r chi.Router) {
	r.Get("/auth/me", h.Me)
}

// Me returns the authenticated caller's login as plain text.
// 200: login; 401: request carries no authenticated principal.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	login := middleware.Principal(r.Context())
	if login == "" {
		problem.Write(w, http.StatusUnauthorized, "Unauthorized", "Not authenticated")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(login))
}
