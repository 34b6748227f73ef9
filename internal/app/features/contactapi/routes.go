package contactapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// PublicRoutes returns the message submission endpoint.
//
// When mounted at /api/contacts:
//   - POST /api/contacts  - Submit a contact message
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Post("/", h.Submit)
	return r
}

// AdminRoutes returns the inbox endpoints. The caller mounts these behind
// RequireAdmin.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.ListAll)
	r.Delete("/{id}", h.Delete())
	return r
}
