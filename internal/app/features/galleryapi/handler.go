// Package galleryapi provides the photo gallery endpoints.
//
// Albums store only hosted image URLs. Base64 payloads from the admin UI
// are uploaded to file storage before the document is written, so no image
// bytes ever land in MongoDB.
package galleryapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	gallerystore "github.com/newleaforg/newleaf/internal/app/store/gallery"
	"github.com/newleaforg/newleaf/internal/app/system/images"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// Handler handles gallery API requests.
type Handler struct {
	albums   *gallerystore.Store
	uploader *images.Uploader
	logger   *zap.Logger
}

// NewHandler creates a new galleryapi handler.
func NewHandler(albums *gallerystore.Store, uploader *images.Uploader, logger *zap.Logger) *Handler {
	return &Handler{albums: albums, uploader: uploader, logger: logger}
}

// List handles GET /api/gallery.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	albums, err := h.albums.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list albums", zap.Error(err))
		jsonutil.InternalError(w, "failed to list gallery")
		return
	}
	jsonutil.OK(w, albums)
}

type albumRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Create handles POST /api/admin/gallery.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req albumRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Image == "" {
		jsonutil.BadRequest(w, "name and image are required")
		return
	}

	imageURL, ok := h.resolveImage(w, r, req.Image)
	if !ok {
		return
	}

	album, err := h.albums.Create(r.Context(), models.Album{
		Name:     req.Name,
		ImageURL: imageURL,
	})
	if err != nil {
		h.logger.Error("failed to create album", zap.Error(err))
		jsonutil.InternalError(w, "failed to create album")
		return
	}
	jsonutil.Created(w, album)
}

type albumUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Image *string `json:"image,omitempty"`
}

// Update handles PATCH /api/admin/gallery/{id}. Replacing the image removes
// the previous upload best effort.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	var req albumUpdateRequest
	if !webapi.DecodeBody(w, r, &req) {
		return
	}

	current, err := h.albums.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gallerystore.ErrNotFound) {
			jsonutil.NotFound(w, "album not found")
			return
		}
		h.logger.Error("failed to load album", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update album")
		return
	}

	name := current.Name
	imageURL := current.ImageURL
	if req.Name != nil {
		if *req.Name == "" {
			jsonutil.BadRequest(w, "name cannot be empty")
			return
		}
		name = *req.Name
	}
	if req.Image != nil && *req.Image != "" {
		newURL, ok := h.resolveImage(w, r, *req.Image)
		if !ok {
			return
		}
		if newURL != current.ImageURL {
			if err := h.uploader.Remove(r.Context(), current.ImageURL); err != nil {
				h.logger.Warn("failed to remove replaced album image",
					zap.String("id", id.Hex()),
					zap.Error(err))
			}
		}
		imageURL = newURL
	}

	album, err := h.albums.Update(r.Context(), id, name, imageURL)
	if err != nil {
		if errors.Is(err, gallerystore.ErrNotFound) {
			jsonutil.NotFound(w, "album not found")
			return
		}
		h.logger.Error("failed to update album", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update album")
		return
	}
	jsonutil.OK(w, album)
}

// Delete handles DELETE /api/admin/gallery/{id}. The stored image is removed
// best effort after the document.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := webapi.IDParam(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return
	}

	album, err := h.albums.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gallerystore.ErrNotFound) {
			jsonutil.NotFound(w, "album not found")
			return
		}
		h.logger.Error("failed to load album", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete album")
		return
	}

	if err := h.albums.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gallerystore.ErrNotFound) {
			jsonutil.NotFound(w, "album not found")
			return
		}
		h.logger.Error("failed to delete album", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete album")
		return
	}

	if err := h.uploader.Remove(r.Context(), album.ImageURL); err != nil {
		h.logger.Warn("failed to remove album image",
			zap.String("id", id.Hex()),
			zap.Error(err))
	}

	jsonutil.Success(w)
}

func (h *Handler) resolveImage(w http.ResponseWriter, r *http.Request, ref string) (string, bool) {
	url, err := h.uploader.Resolve(r.Context(), "gallery", ref)
	if err != nil {
		if errors.Is(err, images.ErrInvalidImage) || errors.Is(err, images.ErrImageTooBig) {
			jsonutil.BadRequest(w, err.Error())
			return "", false
		}
		h.logger.Error("failed to upload gallery image", zap.Error(err))
		jsonutil.InternalError(w, "failed to store image")
		return "", false
	}
	return url, true
}
