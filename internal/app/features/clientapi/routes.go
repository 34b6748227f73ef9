package clientapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// Routes returns the client CRM endpoints. There is no public surface; the
// caller mounts these behind RequireAdmin.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete())
	return r
}
