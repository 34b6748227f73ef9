package authapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// Routes returns a router with the authentication endpoints.
//
// When mounted at /api/auth:
//   - POST /api/auth/login
//   - POST /api/auth/logout
//   - GET  /api/auth/me              (session required)
//   - POST /api/auth/change-password (session required)
//   - POST /api/auth/reset-request
//   - POST /api/auth/reset-confirm
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Post("/reset-request", h.ResetRequest)
	r.Post("/reset-confirm", h.ResetConfirm)

	r.Group(func(pr chi.Router) {
		pr.Use(h.tokens.RequireAdmin)
		pr.Get("/me", h.Me)
		pr.Post("/change-password", h.ChangePassword)
	})

	return r
}
