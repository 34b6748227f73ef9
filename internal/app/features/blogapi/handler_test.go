package blogapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	blogstore "github.com/newleaforg/newleaf/internal/app/store/blogs"
	"github.com/newleaforg/newleaf/internal/app/system/images"
	"github.com/newleaforg/newleaf/internal/domain/models"
	"github.com/newleaforg/newleaf/internal/testutil"
)

// tinyPNG is a 1x1 transparent PNG used as upload payload.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func newTestHandler(t *testing.T, db *mongo.Database) (*Handler, *blogstore.Store) {
	t.Helper()

	store, err := storage.NewLocal(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/files",
	})
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	blogs := blogstore.New(db)
	return NewHandler(blogs, images.NewUploader(store), zap.NewNop()), blogs
}

func seedPost(t *testing.T, blogs *blogstore.Store, title string, status models.BlogStatus) models.Blog {
	t.Helper()

	ctx, cancel := testutil.TestContext()
	defer cancel()
	post, err := blogs.Create(ctx, models.Blog{
		Title:    title,
		Content:  "<p>body</p>",
		Category: "news",
		Status:   status,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return post
}

func TestPublicListShowsOnlyPublished(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, blogs := newTestHandler(t, db)
	seedPost(t, blogs, "Visible", models.BlogPublished)
	seedPost(t, blogs, "Hidden draft", models.BlogDraft)

	rec := testutil.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Visible")
	if strings.Contains(rec.Body.String(), "Hidden draft") {
		t.Error("draft posts must not appear in the public list")
	}
}

func TestPublicGetHidesDrafts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, blogs := newTestHandler(t, db)
	draft := seedPost(t, blogs, "Draft", models.BlogDraft)
	published := seedPost(t, blogs, "Live", models.BlogPublished)

	rec := testutil.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodGet, "/"+published.ID.Hex()))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodGet, "/"+draft.ID.Hex()))
	rec.AssertStatus(t, http.StatusNotFound)

	rec = testutil.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodGet, "/not-an-id"))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestAdminListFiltersByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, blogs := newTestHandler(t, db)
	seedPost(t, blogs, "A draft", models.BlogDraft)
	seedPost(t, blogs, "A published", models.BlogPublished)

	rec := testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodGet, "/?status=draft"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "A draft")
	if strings.Contains(rec.Body.String(), "A published") {
		t.Error("status filter should exclude published posts")
	}

	rec = testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodGet, "/?status=bogus"))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newTestHandler(t, db)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", map[string]string{
		"title":    "Opening day",
		"content":  "<p>Hello</p><script>alert(1)</script>",
		"category": "events",
		"status":   "published",
	})
	rec := testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusCreated)
	env := rec.Envelope(t)
	var post models.Blog
	raw, _ := json.Marshal(env.Data)
	if err := json.Unmarshal(raw, &post); err != nil {
		t.Fatalf("decode created post: %v", err)
	}
	if post.Status != models.BlogPublished {
		t.Errorf("status: got %q, want %q", post.Status, models.BlogPublished)
	}
	if strings.Contains(post.Content, "<script>") {
		t.Error("script tags must be stripped from content")
	}
}

func TestCreate_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newTestHandler(t, db)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing title", map[string]string{"content": "x", "category": "news"}},
		{"missing content", map[string]string{"title": "x", "category": "news"}},
		{"bad category", map[string]string{"title": "x", "content": "y", "category": "gossip"}},
		{"bad status", map[string]string{"title": "x", "content": "y", "category": "news", "status": "archived"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewJSONRequest(t, http.MethodPost, "/", tt.body))
			rec.AssertStatus(t, http.StatusBadRequest)
		})
	}
}

func TestCreate_UploadsInlineImage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newTestHandler(t, db)

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(tinyPNG)
	req := testutil.NewJSONRequest(t, http.MethodPost, "/", map[string]string{
		"title":    "With image",
		"content":  "<p>pic</p>",
		"category": "community",
		"image":    dataURL,
	})
	rec := testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusCreated)
	env := rec.Envelope(t)
	var post models.Blog
	raw, _ := json.Marshal(env.Data)
	if err := json.Unmarshal(raw, &post); err != nil {
		t.Fatalf("decode created post: %v", err)
	}
	if !strings.HasPrefix(post.ImageURL, "/files/blogs/") {
		t.Errorf("image should be stored under /files/blogs/, got %q", post.ImageURL)
	}
	if strings.Contains(post.ImageURL, "base64") {
		t.Error("stored image must be a hosted URL, not inline data")
	}
}

func TestCreate_RejectsBrokenImage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newTestHandler(t, db)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", map[string]string{
		"title":    "Bad image",
		"content":  "<p>x</p>",
		"category": "news",
		"image":    "javascript:alert(1)",
	})
	rec := testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestUpdate_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, blogs := newTestHandler(t, db)
	post := seedPost(t, blogs, "Before", models.BlogDraft)

	req := testutil.NewJSONRequest(t, http.MethodPatch, "/"+post.ID.Hex(), map[string]string{
		"status": "published",
	})
	rec := testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	env := rec.Envelope(t)
	var got models.Blog
	raw, _ := json.Marshal(env.Data)
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode updated post: %v", err)
	}
	if got.Title != "Before" {
		t.Errorf("title should be untouched, got %q", got.Title)
	}
	if got.Status != models.BlogPublished {
		t.Errorf("status: got %q, want %q", got.Status, models.BlogPublished)
	}
}

func TestUpdate_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, blogs := newTestHandler(t, db)
	post := seedPost(t, blogs, "Target", models.BlogDraft)

	rec := testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder,
		testutil.NewJSONRequest(t, http.MethodPatch, "/"+post.ID.Hex(), map[string]string{"title": ""}))
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder,
		testutil.NewJSONRequest(t, http.MethodPatch, "/64b000000000000000000000", map[string]string{"title": "x"}))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, blogs := newTestHandler(t, db)
	post := seedPost(t, blogs, "Doomed", models.BlogDraft)

	rec := testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodDelete, "/"+post.ID.Hex()))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodDelete, "/"+post.ID.Hex()))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newTestHandler(t, db)

	rec := testutil.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodPut, "/"))
	rec.AssertStatus(t, http.StatusMethodNotAllowed)
}
