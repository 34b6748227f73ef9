// Package adminapi provides the superadmin account-management endpoints:
// listing admin accounts and toggling their active flag. Deactivation takes
// effect on the target's next request through the session fetcher.
package adminapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	adminstore "github.com/newleaforg/newleaf/internal/app/store/admins"
	"github.com/newleaforg/newleaf/internal/app/system/auth"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// Handler handles admin account management requests.
type Handler struct {
	admins *adminstore.Store
	logger *zap.Logger
}

// NewHandler creates a new adminapi handler.
func NewHandler(admins *adminstore.Store, logger *zap.Logger) *Handler {
	return &Handler{admins: admins, logger: logger}
}

// List handles GET /api/admin/admins.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.admins.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list admin accounts", zap.Error(err))
		jsonutil.InternalError(w, "failed to list admins")
		return
	}
	jsonutil.OK(w, accounts)
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

// SetActive handles PATCH /api/admin/admins/{id}. An admin cannot deactivate
// their own account.
func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	var req setActiveRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	if req.Active == nil {
		jsonutil.BadRequest(w, "active is required")
		return
	}

	if a, ok := auth.CurrentAdmin(r); ok && a.ID == id.Hex() && !*req.Active {
		jsonutil.BadRequest(w, "cannot deactivate your own account")
		return
	}

	if err := h.admins.SetActive(r.Context(), id, *req.Active); err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			jsonutil.NotFound(w, "admin not found")
			return
		}
		h.logger.Error("failed to update admin active flag",
			zap.String("id", id.Hex()),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to update admin")
		return
	}

	account, err := h.admins.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to load admin after update", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update admin")
		return
	}
	jsonutil.OK(w, account)
}
