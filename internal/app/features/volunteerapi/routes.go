package volunteerapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// PublicRoutes returns the application submission endpoint.
//
// When mounted at /api/volunteers:
//   - POST /api/volunteers  - Submit a volunteer application
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Post("/", h.Apply)
	return r
}

// AdminRoutes returns the review endpoints. The caller mounts these behind
// RequireAdmin.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.ListAll)
	r.Patch("/{id}", h.SetStatus)
	r.Delete("/{id}", h.Delete())
	return r
}
