// Package images uploads gallery and blog images to file storage and hands
// back durable public URLs. Incoming images arrive either as data URLs
// (base64 from the admin UI) or as already-hosted http(s) URLs; only data
// URLs are uploaded, so documents never hold base64 payloads.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
)

// MaxImageBytes caps decoded image size at 10 MB.
const MaxImageBytes = 10 << 20

var (
	ErrInvalidImage = errors.New("invalid image data")
	ErrImageTooBig  = errors.New("image exceeds maximum size")
)

// extByContentType maps accepted image content types to file extensions.
var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Uploader stores images and resolves their public URLs.
type Uploader struct {
	store storage.Store
}

// NewUploader creates an Uploader backed by the given file storage.
func NewUploader(store storage.Store) *Uploader {
	return &Uploader{store: store}
}

// Resolve returns a hosted URL for the given image reference. An http(s) URL
// is returned unchanged; a data URL is decoded and uploaded under the given
// prefix (e.g. "gallery", "blogs"). Anything else is rejected.
func (u *Uploader) Resolve(ctx context.Context, prefix, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref, nil
	case strings.HasPrefix(ref, "data:"):
		return u.uploadDataURL(ctx, prefix, ref)
	default:
		return "", ErrInvalidImage
	}
}

// Remove deletes a previously uploaded image if it lives in our storage.
// URLs hosted elsewhere are left alone.
func (u *Uploader) Remove(ctx context.Context, imageURL string) error {
	path, ok := u.storagePath(imageURL)
	if !ok {
		return nil
	}
	return u.store.Delete(ctx, path)
}

// uploadDataURL decodes a data URL, validates its content type and size, and
// uploads it under prefix/YYYY/MM/uuid.ext.
func (u *Uploader) uploadDataURL(ctx context.Context, prefix, dataURL string) (string, error) {
	contentType, data, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidImage, contentType)
	}

	now := time.Now().UTC()
	path := fmt.Sprintf("%s/%04d/%02d/%s%s", prefix, now.Year(), int(now.Month()), uuid.New().String(), ext)

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := u.store.Put(ctx, path, bytes.NewReader(data), opts); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return u.store.URL(path), nil
}

// storagePath maps a public URL back to its storage path when the URL was
// produced by this uploader's store.
func (u *Uploader) storagePath(imageURL string) (string, bool) {
	base := u.store.URL("")
	if base == "" || !strings.HasPrefix(imageURL, base) {
		return "", false
	}
	path := strings.TrimPrefix(imageURL, base)
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "", false
	}
	return path, true
}

// decodeDataURL parses a "data:<type>;base64,<payload>" URL.
func decodeDataURL(dataURL string) (contentType string, data []byte, err error) {
	rest := strings.TrimPrefix(dataURL, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidImage
	}
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, fmt.Errorf("%w: not base64 encoded", ErrInvalidImage)
	}
	contentType = strings.TrimSuffix(meta, ";base64")

	// Reject oversized payloads before decoding. Base64 inflates by 4/3.
	if len(payload) > MaxImageBytes*4/3+4 {
		return "", nil, ErrImageTooBig
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) > MaxImageBytes {
		return "", nil, ErrImageTooBig
	}
	return contentType, data, nil
}
