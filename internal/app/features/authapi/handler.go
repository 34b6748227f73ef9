// Package authapi provides the admin authentication endpoints.
//
// Endpoints:
//   - POST /api/auth/login            - Exchange credentials for a session cookie
//   - POST /api/auth/logout           - Clear the session cookie
//   - GET  /api/auth/me               - Resolve the current session
//   - POST /api/auth/change-password  - Change own password (session required)
//   - POST /api/auth/reset-request    - Email a single-use reset link
//   - POST /api/auth/reset-confirm    - Consume the reset link
//
// The session token is a signed JWT carried only in the adminToken HTTP-only
// cookie; it never appears in a response body.
package authapi

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	adminstore "github.com/newleaforg/newleaf/internal/app/store/admins"
	"github.com/newleaforg/newleaf/internal/app/system/auth"
	"github.com/newleaforg/newleaf/internal/app/system/authutil"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/mailer"
	"github.com/newleaforg/newleaf/internal/app/system/normalize"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// resetTokenTTL is how long a password reset link stays valid.
const resetTokenTTL = time.Hour

// Handler handles authentication requests.
type Handler struct {
	admins   *adminstore.Store
	tokens   *auth.TokenManager
	mail     *mailer.Mailer
	resetURL string // frontend page that collects the new password
	logger   *zap.Logger
}

// NewHandler creates a new authapi handler. resetURL is the absolute URL of
// the frontend reset page; the token is appended as a query parameter.
func NewHandler(admins *adminstore.Store, tokens *auth.TokenManager, mail *mailer.Mailer, resetURL string, logger *zap.Logger) *Handler {
	return &Handler{
		admins:   admins,
		tokens:   tokens,
		mail:     mail,
		resetURL: resetURL,
		logger:   logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. Unknown email and wrong password
// produce the same 401 so the response does not reveal which part failed.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	req.Email = normalize.Email(req.Email)
	if req.Email == "" || req.Password == "" {
		jsonutil.BadRequest(w, "email and password are required")
		return
	}

	admin, err := h.admins.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			jsonutil.Unauthorized(w, "invalid email or password")
			return
		}
		h.logger.Error("login lookup failed", zap.Error(err))
		jsonutil.InternalError(w, "login failed")
		return
	}

	if !authutil.CheckPassword(req.Password, admin.PasswordHash) {
		jsonutil.Unauthorized(w, "invalid email or password")
		return
	}

	if !admin.Active {
		jsonutil.Forbidden(w, "account is disabled")
		return
	}

	token, err := h.tokens.IssueToken(admin.ID)
	if err != nil {
		h.logger.Error("failed to issue session token", zap.Error(err))
		jsonutil.InternalError(w, "login failed")
		return
	}
	h.tokens.SetCookie(w, token)

	h.logger.Info("admin logged in",
		zap.String("admin_id", admin.ID.Hex()),
		zap.String("email", admin.Email))

	jsonutil.OK(w, map[string]any{
		"id":    admin.ID.Hex(),
		"email": admin.Email,
		"role":  admin.Role,
	})
}

// Logout handles POST /api/auth/logout. It always succeeds, session or not.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.tokens.ClearCookie(w)
	jsonutil.Success(w)
}

// Me handles GET /api/auth/me. RequireAdmin guarantees an admin in context.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentAdmin(r)
	jsonutil.OK(w, map[string]any{
		"id":    a.ID,
		"email": a.Email,
		"role":  a.Role,
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles POST /api/auth/change-password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentAdmin(r)

	var req changePasswordRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}

	admin, err := h.admins.GetByID(r.Context(), a.AdminID())
	if err != nil {
		h.logger.Error("change password lookup failed",
			zap.String("admin_id", a.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to change password")
		return
	}

	if !authutil.CheckPassword(req.CurrentPassword, admin.PasswordHash) {
		jsonutil.Unauthorized(w, "current password is incorrect")
		return
	}

	if err := authutil.ValidatePassword(req.NewPassword); err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}

	hash, err := authutil.HashPassword(req.NewPassword)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		jsonutil.InternalError(w, "failed to change password")
		return
	}

	if err := h.admins.UpdatePassword(r.Context(), admin.ID, hash); err != nil {
		h.logger.Error("failed to update password",
			zap.String("admin_id", a.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to change password")
		return
	}

	h.logger.Info("admin changed password", zap.String("admin_id", a.ID))
	jsonutil.Success(w)
}

type resetRequestRequest struct {
	Email string `json:"email"`
}

// ResetRequest handles POST /api/auth/reset-request. Unknown emails get a
// 404; callers relying on that to probe for accounts is an accepted
// trade-off for a small back office.
func (h *Handler) ResetRequest(w http.ResponseWriter, r *http.Request) {
	var req resetRequestRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	req.Email = normalize.Email(req.Email)
	if req.Email == "" {
		jsonutil.BadRequest(w, "email is required")
		return
	}

	admin, err := h.admins.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			jsonutil.NotFound(w, "no admin account with that email")
			return
		}
		h.logger.Error("reset request lookup failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to request password reset")
		return
	}

	token, err := authutil.GenerateResetToken()
	if err != nil {
		h.logger.Error("failed to generate reset token", zap.Error(err))
		jsonutil.InternalError(w, "failed to request password reset")
		return
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	if err := h.admins.SetResetToken(r.Context(), admin.ID, token, expiresAt); err != nil {
		h.logger.Error("failed to store reset token",
			zap.String("admin_id", admin.ID.Hex()),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to request password reset")
		return
	}

	textBody, htmlBody := mailer.PasswordResetEmail(mailer.PasswordResetEmailData{
		AppName:   h.mail.FromName(),
		ResetURL:  h.resetURL + "?token=" + token,
		ExpiryMin: int(resetTokenTTL.Minutes()),
	})
	h.mail.SendAsync(mailer.Email{
		To:       admin.Email,
		Subject:  "Reset your admin password",
		TextBody: textBody,
		HTMLBody: htmlBody,
	})

	h.logger.Info("password reset requested", zap.String("admin_id", admin.ID.Hex()))
	jsonutil.Success(w)
}

type resetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetConfirm handles POST /api/auth/reset-confirm. Unknown, reused, and
// expired tokens all fail the same way.
func (h *Handler) ResetConfirm(w http.ResponseWriter, r *http.Request) {
	var req resetConfirmRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	req.Token = normalize.Token(req.Token)
	if req.Token == "" {
		jsonutil.BadRequest(w, "token is required")
		return
	}

	if err := authutil.ValidatePassword(req.NewPassword); err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}

	hash, err := authutil.HashPassword(req.NewPassword)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		jsonutil.InternalError(w, "failed to reset password")
		return
	}

	admin, err := h.admins.ConsumeResetToken(r.Context(), req.Token, hash)
	if err != nil {
		if errors.Is(err, adminstore.ErrResetTokenInvalid) {
			jsonutil.BadRequest(w, adminstore.ErrResetTokenInvalid.Error())
			return
		}
		h.logger.Error("failed to consume reset token", zap.Error(err))
		jsonutil.InternalError(w, "failed to reset password")
		return
	}

	h.logger.Info("admin reset password", zap.String("admin_id", admin.ID.Hex()))
	jsonutil.Success(w)
}
