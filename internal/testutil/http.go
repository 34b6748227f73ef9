package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/newleaforg/newleaf/internal/app/system/auth"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestAdmin represents admin data for testing HTTP handlers.
type TestAdmin struct {
	ID    string
	Email string
	Role  string
}

// AdminAccount returns a TestAdmin with the admin role.
func AdminAccount() TestAdmin {
	return TestAdmin{
		ID:    primitive.NewObjectID().Hex(),
		Email: "admin@test.com",
		Role:  "admin",
	}
}

// WithAdmin adds an admin to the request context for testing authenticated
// handlers. This bypasses the token middleware and injects the admin directly.
func WithAdmin(r *http.Request, admin TestAdmin) *http.Request {
	sessionAdmin := &auth.SessionAdmin{
		ID:    admin.ID,
		Email: admin.Email,
		Role:  admin.Role,
	}
	return auth.WithTestAdmin(r, sessionAdmin)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates an HTTP request with body marshaled as JSON.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewAuthenticatedRequest creates an HTTP request with an admin in context.
func NewAuthenticatedRequest(method, target string, admin TestAdmin) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithAdmin(req, admin)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	body := r.Body.String()
	if !strings.Contains(body, expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// Envelope decodes the JSON response envelope, failing the test if the
// body is not valid JSON.
func (r *ResponseRecorder) Envelope(t *testing.T) jsonutil.Envelope {
	t.Helper()

	var env jsonutil.Envelope
	if err := json.Unmarshal(r.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response envelope: %v (body: %s)", err, r.Body.String())
	}
	return env
}

// AssertError checks that the response carries a failure envelope with the
// given status and an error message containing want.
func (r *ResponseRecorder) AssertError(t *testing.T, status int, want string) {
	t.Helper()

	r.AssertStatus(t, status)
	env := r.Envelope(t)
	if env.Success {
		t.Errorf("expected failure envelope, got success")
	}
	if want != "" && !strings.Contains(env.Error, want) {
		t.Errorf("error message: got %q, want substring %q", env.Error, want)
	}
}
