// Package storyapi provides the community story endpoints.
//
// Stories are submitted through the public site and moderated by admins:
// only approved stories show up in public listings.
package storyapi

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	storystore "github.com/newleaforg/newleaf/internal/app/store/stories"
	"github.com/newleaforg/newleaf/internal/app/system/htmlsanitize"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// Handler handles story API requests.
type Handler struct {
	stories *storystore.Store
	logger  *zap.Logger
}

// NewHandler creates a new storyapi handler.
func NewHandler(stories *storystore.Store, logger *zap.Logger) *Handler {
	return &Handler{stories: stories, logger: logger}
}

// ListApproved handles GET /api/stories.
func (h *Handler) ListApproved(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.ListApproved(r.Context())
	if err != nil {
		h.logger.Error("failed to list approved stories", zap.Error(err))
		jsonutil.InternalError(w, "failed to list stories")
		return
	}
	jsonutil.OK(w, stories)
}

type submitRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category,omitempty"`
}

// Submit handles POST /api/stories. Public submissions always start
// unapproved regardless of the request body.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	if req.Title == "" || req.Content == "" || req.Author == "" {
		jsonutil.BadRequest(w, "title, content, and author are required")
		return
	}

	story, err := h.stories.Create(r.Context(), models.Story{
		Title:    req.Title,
		Content:  htmlsanitize.Sanitize(req.Content),
		Author:   req.Author,
		Category: req.Category,
		Approved: false,
	})
	if err != nil {
		h.logger.Error("failed to create story", zap.Error(err))
		jsonutil.InternalError(w, "failed to submit story")
		return
	}
	jsonutil.Created(w, story)
}

// ListAll handles GET /api/admin/stories with an optional ?approved= filter
// ("true", "false", or "all"; default all).
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	var (
		stories []models.Story
		err     error
	)
	switch r.URL.Query().Get("approved") {
	case "", "all":
		stories, err = h.stories.ListAll(r.Context())
	case "true":
		stories, err = h.stories.ListApproved(r.Context())
	case "false":
		stories, err = h.stories.ListAll(r.Context())
		if err == nil {
			pending := stories[:0]
			for _, st := range stories {
				if !st.Approved {
					pending = append(pending, st)
				}
			}
			stories = pending
		}
	default:
		jsonutil.BadRequest(w, `approved must be "true", "false", or "all"`)
		return
	}
	if err != nil {
		h.logger.Error("failed to list stories", zap.Error(err))
		jsonutil.InternalError(w, "failed to list stories")
		return
	}
	jsonutil.OK(w, stories)
}

type updateRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Author   *string `json:"author,omitempty"`
	Category *string `json:"category,omitempty"`
	Approved *bool   `json:"approved,omitempty"`
}

// Update handles PATCH /api/admin/stories/{id}. Flipping only the approved
// flag is the common moderation path.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	var req updateRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}

	current, err := h.stories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storystore.ErrNotFound) {
			jsonutil.NotFound(w, "story not found")
			return
		}
		h.logger.Error("failed to load story", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update story")
		return
	}

	upd := storystore.Update{
		Title:    current.Title,
		Content:  current.Content,
		Author:   current.Author,
		Category: current.Category,
		Approved: current.Approved,
	}
	if req.Title != nil {
		if *req.Title == "" {
			jsonutil.BadRequest(w, "title cannot be empty")
			return
		}
		upd.Title = *req.Title
	}
	if req.Content != nil {
		if *req.Content == "" {
			jsonutil.BadRequest(w, "content cannot be empty")
			return
		}
		upd.Content = htmlsanitize.Sanitize(*req.Content)
	}
	if req.Author != nil {
		upd.Author = *req.Author
	}
	if req.Category != nil {
		upd.Category = *req.Category
	}
	if req.Approved != nil {
		upd.Approved = *req.Approved
	}

	story, err := h.stories.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, storystore.ErrNotFound) {
			jsonutil.NotFound(w, "story not found")
			return
		}
		h.logger.Error("failed to update story", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update story")
		return
	}
	jsonutil.OK(w, story)
}

// Delete handles DELETE /api/admin/stories/{id}.
func (h *Handler) Delete() http.HandlerFunc {
	return webapi.DeleteHandler(h.logger, "story", storystore.ErrNotFound,
		func(r *http.Request, id primitive.ObjectID) error {
			return h.stories.Delete(r.Context(), id)
		})
}
