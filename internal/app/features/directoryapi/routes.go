// internal/app/features/directoryapi/routes.go
package directoryapi

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /api/directory on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/api/directory", h.Serve)
}
