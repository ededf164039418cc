package transporthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"insurhub/internal/http/handlers"
	"insurhub/internal/middleware"
)

// Deps bundles feature handlers that implement handlers.Mountable.
type Deps struct {
	Mounts []handlers.Mountable
}

// NewRouter builds the /api router. Every feature handler mounts its own
// routes; the outer middleware stack is assembled in cmd/api.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.SetJSONContentType)

	// Mount each feature's routes into this router.
	for _, m := range d.Mounts {
		m.Mount(r)
	}

	return r
}
