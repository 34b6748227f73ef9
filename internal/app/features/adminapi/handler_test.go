package adminapi

import (
	"net/http"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	adminstore "github.com/newleaforg/newleaf/internal/app/store/admins"
	"github.com/newleaforg/newleaf/internal/app/system/authutil"
	"github.com/newleaforg/newleaf/internal/domain/models"
	"github.com/newleaforg/newleaf/internal/testutil"
)

func newTestHandler(t *testing.T, db *mongo.Database) (*Handler, *adminstore.Store) {
	t.Helper()
	admins := adminstore.New(db)
	return NewHandler(admins, zap.NewNop()), admins
}

func createAdmin(t *testing.T, admins *adminstore.Store, email string) models.Admin {
	t.Helper()

	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := authutil.HashPassword("a-strong-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	a, err := admins.Create(ctx, models.Admin{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return a
}

func TestList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, admins := newTestHandler(t, db)
	createAdmin(t, admins, "one@example.com")
	createAdmin(t, admins, "two@example.com")

	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "one@example.com")
	rec.AssertContains(t, "two@example.com")
	if strings.Contains(rec.Body.String(), "password_hash") || strings.Contains(rec.Body.String(), "$2a$") {
		t.Error("listing must not expose password hashes")
	}
}

func TestSetActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, admins := newTestHandler(t, db)
	target := createAdmin(t, admins, "target@example.com")

	actor := testutil.TestAdmin{ID: "64b000000000000000000001", Email: "super@example.com", Role: models.RoleSuperAdmin}
	req := testutil.WithAdmin(
		testutil.NewJSONRequest(t, http.MethodPatch, "/"+target.ID.Hex(), map[string]bool{"active": false}),
		actor)
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"active":false`)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	got, err := admins.GetByID(ctx, target.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Active {
		t.Error("account should be inactive after the update")
	}
}

func TestSetActive_CannotDeactivateSelf(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, admins := newTestHandler(t, db)
	self := createAdmin(t, admins, "self@example.com")

	actor := testutil.TestAdmin{ID: self.ID.Hex(), Email: self.Email, Role: models.RoleSuperAdmin}
	req := testutil.WithAdmin(
		testutil.NewJSONRequest(t, http.MethodPatch, "/"+self.ID.Hex(), map[string]bool{"active": false}),
		actor)
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec.ResponseRecorder, req)

	rec.AssertError(t, http.StatusBadRequest, "own account")

	ctx, cancel := testutil.TestContext()
	defer cancel()
	got, err := admins.GetByID(ctx, self.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.Active {
		t.Error("account should remain active")
	}
}

func TestSetActive_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, admins := newTestHandler(t, db)
	target := createAdmin(t, admins, "errors@example.com")

	// Missing active field
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec.ResponseRecorder,
		testutil.NewJSONRequest(t, http.MethodPatch, "/"+target.ID.Hex(), map[string]string{}))
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = testutil.NewRecorder()
	Routes(h).ServeHTTP(rec.ResponseRecorder,
		testutil.NewJSONRequest(t, http.MethodPatch, "/64b000000000000000000000", map[string]bool{"active": true}))
	rec.AssertStatus(t, http.StatusNotFound)

	rec = testutil.NewRecorder()
	Routes(h).ServeHTTP(rec.ResponseRecorder,
		testutil.NewJSONRequest(t, http.MethodPatch, "/not-an-id", map[string]bool{"active": true}))
	rec.AssertStatus(t, http.StatusBadRequest)
}
