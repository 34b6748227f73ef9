// Package volunteerapi provides the volunteer application endpoints.
//
// Applications arrive through the public site; admins review and move them
// through pending/approved/rejected. Email and phone are each unique across
// applications, and the two conflicts are reported separately so the form
// can point at the right field.
package volunteerapi

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	volunteerstore "github.com/newleaforg/newleaf/internal/app/store/volunteers"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// Handler handles volunteer API requests.
type Handler struct {
	volunteers *volunteerstore.Store
	logger     *zap.Logger
}

// NewHandler creates a new volunteerapi handler.
func NewHandler(volunteers *volunteerstore.Store, logger *zap.Logger) *Handler {
	return &Handler{volunteers: volunteers, logger: logger}
}

type applyRequest struct {
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	WhatsAppNumber string   `json:"whatsapp_number,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	Address        string   `json:"address,omitempty"`
	TimeCommitment []string `json:"time_commitment,omitempty"`
}

// Apply handles POST /api/volunteers.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	if req.FullName == "" || req.Email == "" || req.Phone == "" {
		jsonutil.BadRequest(w, "full_name, email, and phone are required")
		return
	}

	v, err := h.volunteers.Create(r.Context(), models.Volunteer{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		WhatsAppNumber: req.WhatsAppNumber,
		Gender:         req.Gender,
		Address:        req.Address,
		TimeCommitment: req.TimeCommitment,
		Status:         models.VolunteerPending,
	})
	if err != nil {
		switch {
		case errors.Is(err, volunteerstore.ErrDuplicateEmail):
			jsonutil.Conflict(w, err.Error())
		case errors.Is(err, volunteerstore.ErrDuplicatePhone):
			jsonutil.Conflict(w, err.Error())
		default:
			h.logger.Error("failed to create volunteer", zap.Error(err))
			jsonutil.InternalError(w, "failed to submit application")
		}
		return
	}
	jsonutil.Created(w, v)
}

// ListAll handles GET /api/admin/volunteers with an optional ?status= filter.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	status := models.VolunteerStatus(r.URL.Query().Get("status"))
	if status != "" && !models.IsValidVolunteerStatus(status) {
		jsonutil.BadRequest(w, `status must be "pending", "approved", or "rejected"`)
		return
	}

	volunteers, err := h.volunteers.ListAll(r.Context(), status)
	if err != nil {
		h.logger.Error("failed to list volunteers", zap.Error(err))
		jsonutil.InternalError(w, "failed to list volunteers")
		return
	}
	jsonutil.OK(w, volunteers)
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles PATCH /api/admin/volunteers/{id}.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	var req statusRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	status := models.VolunteerStatus(req.Status)
	if !models.IsValidVolunteerStatus(status) {
		jsonutil.BadRequest(w, `status must be "pending", "approved", or "rejected"`)
		return
	}

	v, err := h.volunteers.SetStatus(r.Context(), id, status)
	if err != nil {
		if errors.Is(err, volunteerstore.ErrNotFound) {
			jsonutil.NotFound(w, "volunteer not found")
			return
		}
		h.logger.Error("failed to update volunteer status",
			zap.String("id", id.Hex()),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to update volunteer")
		return
	}
	jsonutil.OK(w, v)
}

// Delete handles DELETE /api/admin/volunteers/{id}.
func (h *Handler) Delete() http.HandlerFunc {
	return webapi.DeleteHandler(h.logger, "volunteer", volunteerstore.ErrNotFound,
		func(r *http.Request, id primitive.ObjectID) error {
			return h.volunteers.Delete(r.Context(), id)
		})
}
