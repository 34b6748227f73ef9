package volunteerstore

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

	v, err := store.Create(ctx, models.Volunteer{
		FullName:       "Asha Nair",
		Email:          "  Asha@Example.COM ",
		Phone:          "+91 98765 43210",
		TimeCommitment: []string{"weekends"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if v.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if v.Email != "asha@example.com" {
		t.Errorf("Email = %v, want normalized asha@example.com", v.Email)
	}
	if v.Status != models.VolunteerPending {
		t.Errorf("Status = %v, want pending", v.Status)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Volunteer{
		FullName: "First",
		Email:    "same@example.com",
		Phone:    "1111111111",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := store.Create(ctx, models.Volunteer{
		FullName: "Second",
		Email:    "same@example.com",
		Phone:    "2222222222",
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestStore_Create_DuplicatePhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Volunteer{
		FullName: "First",
		Email:    "one@example.com",
		Phone:    "3333333333",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := store.Create(ctx, models.Volunteer{
		FullName: "Second",
		Email:    "two@example.com",
		Phone:    "3333333333",
	})
	if !errors.Is(err, ErrDuplicatePhone) {
		t.Errorf("Create() error = %v, want ErrDuplicatePhone", err)
	}
}

func TestStore_SetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Volunteer{
		FullName: "Pending Person",
		Email:    "status@example.com",
		Phone:    "4444444444",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.SetStatus(ctx, created.ID, models.VolunteerApproved)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if got.Status != models.VolunteerApproved {
		t.Errorf("Status = %v, want approved", got.Status)
	}

	if _, err := store.SetStatus(ctx, created.ID, "maybe"); err == nil {
		t.Error("SetStatus() should reject unknown status")
	}
	if _, err := store.SetStatus(ctx, primitive.NewObjectID(), models.VolunteerRejected); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetStatus() error = %v, want ErrNotFound", err)
	}
}

func TestStore_ListAll_StatusFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Create(ctx, models.Volunteer{FullName: "A", Email: "a@example.com", Phone: "5551"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(ctx, models.Volunteer{FullName: "B", Email: "b@example.com", Phone: "5552"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.SetStatus(ctx, a.ID, models.VolunteerApproved); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	approved, err := store.ListAll(ctx, models.VolunteerApproved)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(approved) != 1 {
		t.Errorf("ListAll(approved) returned %d, want 1", len(approved))
	}

	all, err := store.ListAll(ctx, "")
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListAll(\"\") returned %d, want 2", len(all))
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Volunteer{FullName: "X", Email: "del@example.com", Phone: "5553"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() second call error = %v, want ErrNotFound", err)
	}
}
