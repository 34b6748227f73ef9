package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef-strong"

func newTestManager(t *testing.T, maxAge time.Duration, secure bool) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret, maxAge, secure, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return tm
}

func TestNewTokenManager_RejectsWeakSecretsInProduction(t *testing.T) {
	logger := zap.NewNop()

	if _, err := NewTokenManager("", time.Hour, false, logger); err == nil {
		t.Error("NewTokenManager() should reject empty secret")
	}
	if _, err := NewTokenManager("short", time.Hour, true, logger); err == nil {
		t.Error("NewTokenManager() should reject short secret in secure mode")
	}
	if _, err := NewTokenManager("dev-only-change-me-please-0123456789ABCDEF", time.Hour, true, logger); err == nil {
		t.Error("NewTokenManager() should reject default secret in secure mode")
	}

	// Weak secrets are tolerated (with a warning) in dev
	if _, err := NewTokenManager("short", time.Hour, false, logger); err != nil {
		t.Errorf("NewTokenManager() dev mode error = %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := newTestManager(t, time.Hour, false)
	adminID := primitive.NewObjectID()

	token, err := tm.IssueToken(adminID)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	got, err := tm.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if got != adminID {
		t.Errorf("VerifyToken() = %v, want %v", got, adminID)
	}
}

func TestVerifyToken_Tampered(t *testing.T) {
	tm := newTestManager(t, time.Hour, false)

	token, err := tm.IssueToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := tm.VerifyToken(tampered); err == nil {
		t.Error("VerifyToken() should reject tampered token")
	}
}

func TestVerifyToken_WrongKey(t *testing.T) {
	tm := newTestManager(t, time.Hour, false)
	other, err := NewTokenManager("another-secret-that-is-32-chars-long!", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	token, err := other.IssueToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := tm.VerifyToken(token); err == nil {
		t.Error("VerifyToken() should reject token signed with a different key")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	tm := newTestManager(t, -time.Minute, false)

	token, err := tm.IssueToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := tm.VerifyToken(token); err == nil {
		t.Error("VerifyToken() should reject expired token")
	}
}

func TestSetCookie_Attributes(t *testing.T) {
	tests := []struct {
		name         string
		secure       bool
		wantSameSite http.SameSite
	}{
		{"dev mode", false, http.SameSiteLaxMode},
		{"production", true, http.SameSiteNoneMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newTestManager(t, 7*24*time.Hour, tt.secure)
			rec := httptest.NewRecorder()
			tm.SetCookie(rec, "token-value")

			cookies := rec.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("got %d cookies, want 1", len(cookies))
			}
			c := cookies[0]
			if c.Name != CookieName {
				t.Errorf("cookie name = %q, want %q", c.Name, CookieName)
			}
			if !c.HttpOnly {
				t.Error("cookie should be HttpOnly")
			}
			if c.Secure != tt.secure {
				t.Errorf("cookie Secure = %v, want %v", c.Secure, tt.secure)
			}
			if c.SameSite != tt.wantSameSite {
				t.Errorf("cookie SameSite = %v, want %v", c.SameSite, tt.wantSameSite)
			}
			if c.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
				t.Errorf("cookie MaxAge = %d, want 7 days in seconds", c.MaxAge)
			}
		})
	}
}

func TestClearCookie(t *testing.T) {
	tm := newTestManager(t, time.Hour, false)
	rec := httptest.NewRecorder()
	tm.ClearCookie(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Errorf("ClearCookie() cookie = value %q maxAge %d, want empty/negative", cookies[0].Value, cookies[0].MaxAge)
	}
}

// staticFetcher resolves a fixed set of admins by ID.
type staticFetcher struct {
	admins map[string]*SessionAdmin
}

func (f *staticFetcher) FetchAdmin(_ context.Context, adminID string) *SessionAdmin {
	return f.admins[adminID]
}

func TestLoadAdmin_InjectsAdmin(t *testing.T) {
	tm := newTestManager(t, time.Hour, false)
	adminID := primitive.NewObjectID()
	tm.SetAdminFetcher(&staticFetcher{admins: map[string]*SessionAdmin{
		adminID.Hex(): {ID: adminID.Hex(), Email: "a@x.com", Role: "admin"},
	}})

	token, err := tm.IssueToken(adminID)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	var got *SessionAdmin
	handler := tm.LoadAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentAdmin(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("CurrentAdmin() not set after LoadAdmin with valid token")
	}
	if got.Email != "a@x.com" {
		t.Errorf("Email = %v, want a@x.com", got.Email)
	}
}

func TestLoadAdmin_UnknownAdminContinuesUnauthenticated(t *testing.T) {
	tm := newTestManager(t, time.Hour, false)
	tm.SetAdminFetcher(&staticFetcher{admins: map[string]*SessionAdmin{}})

	token, err := tm.IssueToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	var found bool
	handler := tm.LoadAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = CurrentAdmin(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Error("CurrentAdmin() should not be set when admin record is missing")
	}
}

func TestRequireAdmin(t *testing.T) {
	tm := newTestManager(t, time.Hour, false)
	handler := tm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// No admin in context
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("body = %s, want failure envelope", rec.Body.String())
	}

	// Admin injected
	rec = httptest.NewRecorder()
	req := WithTestAdmin(httptest.NewRequest(http.MethodGet, "/", nil), &SessionAdmin{ID: "1", Role: "admin"})
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	tm := newTestManager(t, time.Hour, false)
	handler := tm.RequireRole("superadmin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Missing admin is 401
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	// Wrong role is 403
	rec = httptest.NewRecorder()
	req := WithTestAdmin(httptest.NewRequest(http.MethodGet, "/", nil), &SessionAdmin{ID: "1", Role: "admin"})
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}

	// Matching role passes
	rec = httptest.NewRecorder()
	req = WithTestAdmin(httptest.NewRequest(http.MethodGet, "/", nil), &SessionAdmin{ID: "1", Role: "superadmin"})
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestSessionAdmin_AdminID(t *testing.T) {
	oid := primitive.NewObjectID()
	a := &SessionAdmin{ID: oid.Hex()}
	if got := a.AdminID(); got != oid {
		t.Errorf("AdminID() = %v, want %v", got, oid)
	}

	bad := &SessionAdmin{ID: "nope"}
	if got := bad.AdminID(); !got.IsZero() {
		t.Errorf("AdminID() for malformed hex = %v, want zero", got)
	}
}
