// Package consultapi provides the consultation request endpoints.
//
// Requests come in from the public site and start Pending. Admins move them
// through the Pending/Accepted/Contacted/Rejected workflow; a Contacted
// transition appends one entry to the request's contact history, which is
// otherwise untouched.
package consultapi

import (
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	consultstore "github.com/newleaforg/newleaf/internal/app/store/consults"
	"github.com/newleaforg/newleaf/internal/app/system/auth"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/mailer"
	"github.com/newleaforg/newleaf/internal/app/system/normalize"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// Handler handles consultation request API calls.
type Handler struct {
	consults   *consultstore.Store
	mail       *mailer.Mailer
	notifyAddr string // org inbox for new-request notifications; empty disables
	logger     *zap.Logger
}

// NewHandler creates a new consultapi handler.
func NewHandler(consults *consultstore.Store, mail *mailer.Mailer, notifyAddr string, logger *zap.Logger) *Handler {
	return &Handler{consults: consults, mail: mail, notifyAddr: notifyAddr, logger: logger}
}

type submitRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Service      string `json:"service"`
	ServiceOther string `json:"service_other,omitempty"`
	Date         string `json:"date,omitempty"`
	Mode         string `json:"mode,omitempty"`
	Message      string `json:"message,omitempty"`
	Consent      bool   `json:"consent"`
}

// Submit handles POST /api/consults. Notification email is fire-and-forget;
// the request succeeds whether or not the email goes out.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	req.Email = normalize.Email(req.Email)
	req.Phone = normalize.Phone(req.Phone)
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Service == "" {
		jsonutil.BadRequest(w, "name, email, phone, and service are required")
		return
	}
	if !req.Consent {
		jsonutil.BadRequest(w, "consent is required")
		return
	}

	cr, err := h.consults.Create(r.Context(), models.ConsultRequest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Service:      req.Service,
		ServiceOther: req.ServiceOther,
		Date:         req.Date,
		Mode:         req.Mode,
		Message:      req.Message,
		Consent:      req.Consent,
	})
	if err != nil {
		h.logger.Error("failed to create consult request", zap.Error(err))
		jsonutil.InternalError(w, "failed to submit request")
		return
	}

	if h.notifyAddr != "" {
		textBody, htmlBody := mailer.ConsultNotificationEmail(mailer.ConsultNotificationData{
			AppName:     h.mail.FromName(),
			Name:        cr.Name,
			Email:       cr.Email,
			Phone:       cr.Phone,
			ServiceType: cr.Service,
			Message:     cr.Message,
		})
		h.mail.SendAsync(mailer.Email{
			To:       h.notifyAddr,
			Subject:  "New consultation request from " + cr.Name,
			TextBody: textBody,
			HTMLBody: htmlBody,
		})
	}

	jsonutil.Created(w, cr)
}

// ListAll handles GET /api/admin/consults with an optional ?status= filter.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	status := models.ConsultStatus(r.URL.Query().Get("status"))
	if status != "" && !models.IsValidConsultStatus(status) {
		jsonutil.BadRequest(w, models.ErrInvalidConsultStatus.Error())
		return
	}

	requests, err := h.consults.ListAll(r.Context(), status)
	if err != nil {
		h.logger.Error("failed to list consult requests", zap.Error(err))
		jsonutil.InternalError(w, "failed to list requests")
		return
	}
	jsonutil.OK(w, requests)
}

type transitionRequest struct {
	Status string `json:"status"`
}

// Transition handles PATCH /api/admin/consults/{id}. The acting admin's
// email is recorded in the history entry when the new status is Contacted.
func (h *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	var req transitionRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}

	a, ok := auth.CurrentAdmin(r)
	if !ok {
		jsonutil.Unauthorized(w, "authentication required")
		return
	}
	t, err := models.TransitionConsult(models.ConsultStatus(req.Status), a.Email, time.Now())
	if err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}

	cr, err := h.consults.ApplyTransition(r.Context(), id, t)
	if err != nil {
		if errors.Is(err, consultstore.ErrNotFound) {
			jsonutil.NotFound(w, "consult request not found")
			return
		}
		h.logger.Error("failed to transition consult request",
			zap.String("id", id.Hex()),
			zap.String("status", req.Status),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to update request")
		return
	}
	jsonutil.OK(w, cr)
}

// Delete handles DELETE /api/admin/consults/{id}.
func (h *Handler) Delete() http.HandlerFunc {
	return webapi.DeleteHandler(h.logger, "consult request", consultstore.ErrNotFound,
		func(r *http.Request, id primitive.ObjectID) error {
			return h.consults.Delete(r.Context(), id)
		})
}
