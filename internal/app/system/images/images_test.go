package images

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/newleaforg/newleaf/internal/testutil"
)

// tinyPNG is a 1x1 transparent PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func newTestUploader(t *testing.T) *Uploader {
	t.Helper()
	store, err := storage.NewLocal(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/files",
	})
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	return NewUploader(store)
}

func pngDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(tinyPNG)
}

func TestResolve_HostedURLPassthrough(t *testing.T) {
	up := newTestUploader(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, ref := range []string{"https://cdn.example.com/a.jpg", "http://example.com/b.png"} {
		got, err := up.Resolve(ctx, "gallery", ref)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", ref, err)
		}
		if got != ref {
			t.Errorf("Resolve(%q) = %q, want unchanged", ref, got)
		}
	}
}

func TestResolve_DataURLUploads(t *testing.T) {
	up := newTestUploader(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := up.Resolve(ctx, "gallery", pngDataURL())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !strings.HasPrefix(got, "/files/gallery/") {
		t.Errorf("Resolve() = %q, want /files/gallery/ prefix", got)
	}
	if !strings.HasSuffix(got, ".png") {
		t.Errorf("Resolve() = %q, want .png extension", got)
	}
	if strings.Contains(got, "base64") {
		t.Errorf("Resolve() = %q, must not contain base64 payload", got)
	}
}

func TestResolve_RejectsOtherRefs(t *testing.T) {
	up := newTestUploader(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, ref := range []string{"", "ftp://example.com/x.jpg", "just-text", "javascript:alert(1)"} {
		if _, err := up.Resolve(ctx, "gallery", ref); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidImage", ref, err)
		}
	}
}

func TestResolve_RejectsUnsupportedContentType(t *testing.T) {
	up := newTestUploader(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ref := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))
	if _, err := up.Resolve(ctx, "gallery", ref); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Resolve() error = %v, want ErrInvalidImage", err)
	}
}

func TestDecodeDataURL(t *testing.T) {
	contentType, data, err := decodeDataURL(pngDataURL())
	if err != nil {
		t.Fatalf("decodeDataURL() error = %v", err)
	}
	if contentType != "image/png" {
		t.Errorf("contentType = %q, want image/png", contentType)
	}
	if len(data) != len(tinyPNG) {
		t.Errorf("data length = %d, want %d", len(data), len(tinyPNG))
	}

	if _, _, err := decodeDataURL("data:image/png,notbase64"); err == nil {
		t.Error("decodeDataURL() should reject non-base64 data URLs")
	}
	if _, _, err := decodeDataURL("data:image/png;base64"); err == nil {
		t.Error("decodeDataURL() should reject data URLs without a payload")
	}
}

func TestDecodeDataURL_TooBig(t *testing.T) {
	huge := strings.Repeat("A", MaxImageBytes*4/3+8)
	if _, _, err := decodeDataURL("data:image/png;base64," + huge); !errors.Is(err, ErrImageTooBig) {
		t.Errorf("decodeDataURL() error = %v, want ErrImageTooBig", err)
	}
}

func TestRemove(t *testing.T) {
	up := newTestUploader(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	url, err := up.Resolve(ctx, "gallery", pngDataURL())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if err := up.Remove(ctx, url); err != nil {
		t.Errorf("Remove() error = %v", err)
	}

	// URLs hosted elsewhere are ignored
	if err := up.Remove(ctx, "https://cdn.example.com/external.jpg"); err != nil {
		t.Errorf("Remove() external URL error = %v", err)
	}
}
