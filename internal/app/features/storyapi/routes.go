package storyapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// PublicRoutes returns the reader-facing story endpoints.
//
// When mounted at /api/stories:
//   - GET  /api/stories  - Approved stories, newest first
//   - POST /api/stories  - Submit a story (starts unapproved)
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.ListApproved)
	r.Post("/", h.Submit)
	return r
}

// AdminRoutes returns the moderation endpoints. The caller mounts these
// behind RequireAdmin.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.ListAll)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete())
	return r
}
