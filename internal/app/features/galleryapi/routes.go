package galleryapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// PublicRoutes returns the reader-facing gallery endpoints.
//
// When mounted at /api/gallery:
//   - GET /api/gallery  - All albums, newest first
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.List)
	return r
}

// AdminRoutes returns the album management endpoints. The caller mounts
// these behind RequireAdmin.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
