package adminapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// Routes returns the admin account-management endpoints. The caller mounts
// these behind RequireRole(superadmin).
//
// When mounted at /api/admin/admins:
//   - GET   /api/admin/admins       - All admin accounts
//   - PATCH /api/admin/admins/{id}  - Toggle an account's active flag
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.List)
	r.Patch("/{id}", h.SetActive)
	return r
}
