// Package blogapi provides the blog content endpoints.
//
// Public readers only ever see published posts; the admin endpoints operate
// on the full set including drafts. Rich text content is sanitized on every
// write, and inbound base64 images are pushed to file storage so documents
// only hold hosted URLs.
package blogapi

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	blogstore "github.com/newleaforg/newleaf/internal/app/store/blogs"
	"github.com/newleaforg/newleaf/internal/app/system/htmlsanitize"
	"github.com/newleaforg/newleaf/internal/app/system/images"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// Handler handles blog API requests.
type Handler struct {
	blogs    *blogstore.Store
	uploader *images.Uploader
	logger   *zap.Logger
}

// NewHandler creates a new blogapi handler.
func NewHandler(blogs *blogstore.Store, uploader *images.Uploader, logger *zap.Logger) *Handler {
	return &Handler{blogs: blogs, uploader: uploader, logger: logger}
}

// ListPublished handles GET /api/blogs.
func (h *Handler) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogs.ListPublished(r.Context())
	if err != nil {
		h.logger.Error("failed to list published blogs", zap.Error(err))
		jsonutil.InternalError(w, "failed to list blogs")
		return
	}
	jsonutil.OK(w, posts)
}

// GetPublished handles GET /api/blogs/{id}. Drafts 404 here.
func (h *Handler) GetPublished(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	post, err := h.blogs.GetPublishedByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, blogstore.ErrNotFound) {
			jsonutil.NotFound(w, "blog post not found")
			return
		}
		h.logger.Error("failed to load blog", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to load blog")
		return
	}
	jsonutil.OK(w, post)
}

// ListAll handles GET /api/admin/blogs with an optional ?status= filter.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogs.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list blogs", zap.Error(err))
		jsonutil.InternalError(w, "failed to list blogs")
		return
	}

	if status := models.BlogStatus(r.URL.Query().Get("status")); status != "" {
		if !models.IsValidBlogStatus(status) {
			jsonutil.BadRequest(w, `status must be "draft" or "published"`)
			return
		}
		filtered := posts[:0]
		for _, p := range posts {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	jsonutil.OK(w, posts)
}

type createRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category"`
	Status   string `json:"status,omitempty"`
}

// Create handles POST /api/admin/blogs.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	if req.Title == "" || req.Content == "" {
		jsonutil.BadRequest(w, "title and content are required")
		return
	}
	if !models.IsValidBlogCategory(req.Category) {
		jsonutil.BadRequest(w, "invalid category")
		return
	}
	status := models.BlogStatus(req.Status)
	if req.Status == "" {
		status = models.BlogDraft
	}
	if !models.IsValidBlogStatus(status) {
		jsonutil.BadRequest(w, `status must be "draft" or "published"`)
		return
	}

	imageURL, ok := h.resolveImage(w, r, req.Image)
	if !ok {
		return
	}

	post, err := h.blogs.Create(r.Context(), models.Blog{
		Title:    req.Title,
		Content:  htmlsanitize.Sanitize(req.Content),
		ImageURL: imageURL,
		Category: req.Category,
		Status:   status,
	})
	if err != nil {
		h.logger.Error("failed to create blog", zap.Error(err))
		jsonutil.InternalError(w, "failed to create blog")
		return
	}
	jsonutil.Created(w, post)
}

type updateRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Image    *string `json:"image,omitempty"`
	Category *string `json:"category,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Update handles PATCH /api/admin/blogs/{id}. Absent fields keep their
// stored values.
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

	current, err := h.blogs.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, blogstore.ErrNotFound) {
			jsonutil.NotFound(w, "blog post not found")
			return
		}
		h.logger.Error("failed to load blog", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update blog")
		return
	}

	upd := blogstore.Update{
		Title:    current.Title,
		Content:  current.Content,
		ImageURL: current.ImageURL,
		Category: current.Category,
		Status:   current.Status,
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
	if req.Category != nil {
		if !models.IsValidBlogCategory(*req.Category) {
			jsonutil.BadRequest(w, "invalid category")
			return
		}
		upd.Category = *req.Category
	}
	if req.Status != nil {
		status := models.BlogStatus(*req.Status)
		if !models.IsValidBlogStatus(status) {
			jsonutil.BadRequest(w, `status must be "draft" or "published"`)
			return
		}
		upd.Status = status
	}
	if req.Image != nil {
		imageURL, ok := h.resolveImage(w, r, *req.Image)
		if !ok {
			return
		}
		upd.ImageURL = imageURL
	}

	post, err := h.blogs.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, blogstore.ErrNotFound) {
			jsonutil.NotFound(w, "blog post not found")
			return
		}
		h.logger.Error("failed to update blog", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update blog")
		return
	}
	jsonutil.OK(w, post)
}

// Delete handles DELETE /api/admin/blogs/{id}.
func (h *Handler) Delete() http.HandlerFunc {
	return webapi.DeleteHandler(h.logger, "blog post", blogstore.ErrNotFound,
		func(r *http.Request, id primitive.ObjectID) error {
			return h.blogs.Delete(r.Context(), id)
		})
}

// resolveImage uploads a base64 image or passes a hosted URL through. An
// empty reference means "no image".
func (h *Handler) resolveImage(w http.ResponseWriter, r *http.Request, ref string) (string, bool) {
	if ref == "" {
		return "", true
	}
	url, err := h.uploader.Resolve(r.Context(), "blogs", ref)
	if err != nil {
		if errors.Is(err, images.ErrInvalidImage) || errors.Is(err, images.ErrImageTooBig) {
			jsonutil.BadRequest(w, err.Error())
			return "", false
		}
		h.logger.Error("failed to upload blog image", zap.Error(err))
		jsonutil.InternalError(w, "failed to store image")
		return "", false
	}
	return url, true
}
