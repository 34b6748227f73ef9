// Package clientapi provides the admin-only client CRM endpoints.
//
// Clients carry a human-assigned business key (client_id) that is unique
// across records; taking one that's already held is a conflict, on create
// and on update alike.
package clientapi

import (
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	clientstore "github.com/newleaforg/newleaf/internal/app/store/clients"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// Handler handles client CRM API requests.
type Handler struct {
	clients *clientstore.Store
	logger  *zap.Logger
}

// NewHandler creates a new clientapi handler.
func NewHandler(clients *clientstore.Store, logger *zap.Logger) *Handler {
	return &Handler{clients: clients, logger: logger}
}

// List handles GET /api/admin/clients with an optional ?status= filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := models.ClientStatus(r.URL.Query().Get("status"))
	if status != "" && !models.IsValidClientStatus(status) {
		jsonutil.BadRequest(w, `status must be "New", "Under Recovery", or "Recovered"`)
		return
	}

	clients, err := h.clients.ListAll(r.Context(), status)
	if err != nil {
		h.logger.Error("failed to list clients", zap.Error(err))
		jsonutil.InternalError(w, "failed to list clients")
		return
	}
	jsonutil.OK(w, clients)
}

// Get handles GET /api/admin/clients/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	client, err := h.clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, clientstore.ErrNotFound) {
			jsonutil.NotFound(w, "client not found")
			return
		}
		h.logger.Error("failed to load client", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to load client")
		return
	}
	jsonutil.OK(w, client)
}

type clientRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	JoinDate string `json:"join_date,omitempty"` // RFC 3339 date; defaults to today
	Status   string `json:"status,omitempty"`
	Program  string `json:"program,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Create handles POST /api/admin/clients.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	if req.ClientID == "" || req.Name == "" || req.Contact == "" {
		jsonutil.BadRequest(w, "client_id, name, and contact are required")
		return
	}

	joinDate := time.Now()
	if req.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinDate)
		if err != nil {
			jsonutil.BadRequest(w, "join_date must be YYYY-MM-DD")
			return
		}
		joinDate = parsed
	}

	status := models.ClientStatus(req.Status)
	if req.Status == "" {
		status = models.ClientNew
	}
	if !models.IsValidClientStatus(status) {
		jsonutil.BadRequest(w, `status must be "New", "Under Recovery", or "Recovered"`)
		return
	}

	client, err := h.clients.Create(r.Context(), models.Client{
		ClientID: req.ClientID,
		Name:     req.Name,
		Contact:  req.Contact,
		JoinDate: joinDate,
		Status:   status,
		Program:  req.Program,
		Notes:    req.Notes,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, clientstore.ErrDuplicateClientID) {
			jsonutil.Conflict(w, err.Error())
			return
		}
		h.logger.Error("failed to create client", zap.Error(err))
		jsonutil.InternalError(w, "failed to create client")
		return
	}
	jsonutil.Created(w, client)
}

type clientUpdateRequest struct {
	ClientID *string `json:"client_id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Contact  *string `json:"contact,omitempty"`
	JoinDate *string `json:"join_date,omitempty"`
	Status   *string `json:"status,omitempty"`
	Program  *string `json:"program,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// Update handles PATCH /api/admin/clients/{id}. Absent fields keep their
// stored values.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	var req clientUpdateRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}

	current, err := h.clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, clientstore.ErrNotFound) {
			jsonutil.NotFound(w, "client not found")
			return
		}
		h.logger.Error("failed to load client", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update client")
		return
	}

	upd := clientstore.Update{
		ClientID: current.ClientID,
		Name:     current.Name,
		Contact:  current.Contact,
		JoinDate: current.JoinDate,
		Status:   current.Status,
		Program:  current.Program,
		Notes:    current.Notes,
		Address:  current.Address,
	}
	if req.ClientID != nil {
		if *req.ClientID == "" {
			jsonutil.BadRequest(w, "client_id cannot be empty")
			return
		}
		upd.ClientID = *req.ClientID
	}
	if req.Name != nil {
		if *req.Name == "" {
			jsonutil.BadRequest(w, "name cannot be empty")
			return
		}
		upd.Name = *req.Name
	}
	if req.Contact != nil {
		upd.Contact = *req.Contact
	}
	if req.JoinDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			jsonutil.BadRequest(w, "join_date must be YYYY-MM-DD")
			return
		}
		upd.JoinDate = parsed
	}
	if req.Status != nil {
		status := models.ClientStatus(*req.Status)
		if !models.IsValidClientStatus(status) {
			jsonutil.BadRequest(w, `status must be "New", "Under Recovery", or "Recovered"`)
			return
		}
		upd.Status = status
	}
	if req.Program != nil {
		upd.Program = *req.Program
	}
	if req.Notes != nil {
		upd.Notes = *req.Notes
	}
	if req.Address != nil {
		upd.Address = *req.Address
	}

	client, err := h.clients.Update(r.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, clientstore.ErrNotFound):
			jsonutil.NotFound(w, "client not found")
		case errors.Is(err, clientstore.ErrDuplicateClientID):
			jsonutil.Conflict(w, err.Error())
		default:
			h.logger.Error("failed to update client", zap.String("id", id.Hex()), zap.Error(err))
			jsonutil.InternalError(w, "failed to update client")
		}
		return
	}
	jsonutil.OK(w, client)
}

// Delete handles DELETE /api/admin/clients/{id}.
func (h *Handler) Delete() http.HandlerFunc {
	return webapi.DeleteHandler(h.logger, "client", clientstore.ErrNotFound,
		func(r *http.Request, id primitive.ObjectID) error {
			return h.clients.Delete(r.Context(), id)
		})
}
