// Package contactapi provides the contact form endpoints.
//
// Messages are append-only: the public form creates them, admins read and
// delete them, and nothing ever edits one.
package contactapi

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	contactstore "github.com/newleaforg/newleaf/internal/app/store/contacts"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/mailer"
	"github.com/newleaforg/newleaf/internal/app/system/normalize"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// Handler handles contact form API requests.
type Handler struct {
	contacts   *contactstore.Store
	mail       *mailer.Mailer
	notifyAddr string // org inbox for notifications; empty disables
	logger     *zap.Logger
}

// NewHandler creates a new contactapi handler.
func NewHandler(contacts *contactstore.Store, mail *mailer.Mailer, notifyAddr string, logger *zap.Logger) *Handler {
	return &Handler{contacts: contacts, mail: mail, notifyAddr: notifyAddr, logger: logger}
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// Submit handles POST /api/contacts. The notification email is
// fire-and-forget; delivery failure never fails the request.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	req.Email = normalize.Email(req.Email)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		jsonutil.BadRequest(w, "name, email, and message are required")
		return
	}

	ct, err := h.contacts.Create(r.Context(), models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   normalize.Phone(req.Phone),
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("failed to create contact message", zap.Error(err))
		jsonutil.InternalError(w, "failed to submit message")
		return
	}

	if h.notifyAddr != "" {
		textBody, htmlBody := mailer.ContactNotificationEmail(mailer.ContactNotificationData{
			AppName: h.mail.FromName(),
			Name:    ct.Name,
			Email:   ct.Email,
			Phone:   ct.Phone,
			Message: ct.Message,
		})
		h.mail.SendAsync(mailer.Email{
			To:       h.notifyAddr,
			Subject:  "New contact message from " + ct.Name,
			TextBody: textBody,
			HTMLBody: htmlBody,
		})
	}

	jsonutil.Created(w, ct)
}

// ListAll handles GET /api/admin/contacts.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list contact messages", zap.Error(err))
		jsonutil.InternalError(w, "failed to list messages")
		return
	}
	jsonutil.OK(w, contacts)
}

// Delete handles DELETE /api/admin/contacts/{id}.
func (h *Handler) Delete() http.HandlerFunc {
	return webapi.DeleteHandler(h.logger, "contact message", contactstore.ErrNotFound,
		func(r *http.Request, id primitive.ObjectID) error {
			return h.contacts.Delete(r.Context(), id)
		})
}
