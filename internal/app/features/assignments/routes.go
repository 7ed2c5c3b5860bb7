// internal/app/features/assignments/routes.go
package assignments

import "github.com/go-chi/chi/v5"

// MountRoutes registers the assignment API on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Route("/api/assignments", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{assignmentID}", func(r chi.Router) {
			r.Put("/", h.Update)
			r.Post("/advance", h.Advance)
			r.Post("/revert", h.Revert)
			r.Get("/history", h.History)
			r.Delete("/history", h.ClearHistory)
		})
	})
}
