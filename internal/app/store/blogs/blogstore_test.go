package blogstore

import (
	"errors"
	"testing"

	"github.com/newleaforg/newleaf/internal/domain/models"
	"github.com/newleaforg/newleaf/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b, err := store.Create(ctx, models.Blog{
		Title:    "Recovery milestones",
		Content:  "<p>Body</p>",
		Category: "recovery",
		Status:   models.BlogPublished,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if b.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if b.Status != models.BlogPublished {
		t.Errorf("Status = %v, want published", b.Status)
	}
	if b.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStore_Create_DefaultsToDraft(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b, err := store.Create(ctx, models.Blog{
		Title:    "Untitled",
		Content:  "draft body",
		Category: "news",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if b.Status != models.BlogDraft {
		t.Errorf("Status = %v, want draft", b.Status)
	}
}

func TestStore_Create_InvalidEnums(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Blog{Title: "x", Category: "news", Status: "archived"}); err == nil {
		t.Error("Create() should reject unknown status")
	}
	if _, err := store.Create(ctx, models.Blog{Title: "x", Category: "sports", Status: models.BlogDraft}); err == nil {
		t.Error("Create() should reject unknown category")
	}
}

func TestStore_ListPublished(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, status := range []models.BlogStatus{models.BlogDraft, models.BlogPublished, models.BlogPublished} {
		if _, err := store.Create(ctx, models.Blog{
			Title:    "post",
			Content:  "body",
			Category: "news",
			Status:   status,
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	published, err := store.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(published) != 2 {
		t.Errorf("ListPublished() returned %d posts, want 2", len(published))
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListAll() returned %d posts, want 3", len(all))
	}
}

func TestStore_GetPublishedByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	draft, err := store.Create(ctx, models.Blog{
		Title:    "hidden",
		Content:  "body",
		Category: "news",
		Status:   models.BlogDraft,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Drafts are invisible through the published lookup
	if _, err := store.GetPublishedByID(ctx, draft.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPublishedByID() error = %v, want ErrNotFound", err)
	}

	// But visible through the admin lookup
	if _, err := store.GetByID(ctx, draft.ID); err != nil {
		t.Errorf("GetByID() error = %v", err)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Blog{
		Title:    "before",
		Content:  "body",
		Category: "news",
		Status:   models.BlogDraft,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.Update(ctx, created.ID, Update{
		Title:    "after",
		Content:  "new body",
		Category: "events",
		Status:   models.BlogPublished,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Title != "after" {
		t.Errorf("Title = %v, want after", got.Title)
	}
	if got.Status != models.BlogPublished {
		t.Errorf("Status = %v, want published", got.Status)
	}

	if _, err := store.Update(ctx, primitive.NewObjectID(), Update{
		Title: "x", Content: "y", Category: "news", Status: models.BlogDraft,
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Blog{
		Title:    "gone",
		Content:  "body",
		Category: "news",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() second call error = %v, want ErrNotFound", err)
	}
}
