package consultapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// PublicRoutes returns the request submission endpoint.
//
// When mounted at /api/consults:
//   - POST /api/consults  - Submit a consultation request
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Post("/", h.Submit)
	return r
}

// AdminRoutes returns the workflow endpoints. The caller mounts these
// behind RequireAdmin.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.ListAll)
	r.Patch("/{id}", h.Transition)
	r.Delete("/{id}", h.Delete())
	return r
}
