package blogapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// PublicRoutes returns the reader-facing blog endpoints.
//
// When mounted at /api/blogs:
//   - GET /api/blogs       - Published posts, newest first
//   - GET /api/blogs/{id}  - A single published post
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.ListPublished)
	r.Get("/{id}", h.GetPublished)
	return r
}

// AdminRoutes returns the back-office blog endpoints. The caller mounts
// these behind RequireAdmin.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.ListAll)
	r.Post("/", h.Create)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete())
	return r
}
