package webapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var errMissing = errors.New("thing not found")

func deleteRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteHandler_Success(t *testing.T) {
	var deleted primitive.ObjectID
	h := DeleteHandler(zap.NewNop(), "thing", errMissing, func(r *http.Request, id primitive.ObjectID) error {
		deleted = id
		return nil
	})

	id := primitive.NewObjectID()
	rec := httptest.NewRecorder()
	h(rec, deleteRequest(id.Hex()))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if deleted != id {
		t.Errorf("deleted id = %v, want %v", deleted, id)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("body = %s, want success envelope", rec.Body.String())
	}
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	h := DeleteHandler(zap.NewNop(), "thing", errMissing, func(r *http.Request, id primitive.ObjectID) error {
		t.Error("delete func should not run for invalid id")
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, deleteRequest("not-hex"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteHandler_NotFound(t *testing.T) {
	h := DeleteHandler(zap.NewNop(), "thing", errMissing, func(r *http.Request, id primitive.ObjectID) error {
		return errMissing
	})

	rec := httptest.NewRecorder()
	h(rec, deleteRequest(primitive.NewObjectID().Hex()))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "thing not found") {
		t.Errorf("body = %s, want resource name in message", rec.Body.String())
	}
}

func TestDeleteHandler_InternalError(t *testing.T) {
	h := DeleteHandler(zap.NewNop(), "thing", errMissing, func(r *http.Request, id primitive.ObjectID) error {
		return errors.New("connection reset")
	})

	rec := httptest.NewRecorder()
	h(rec, deleteRequest(primitive.NewObjectID().Hex()))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Errorf("body = %s, must not leak internal error", rec.Body.String())
	}
}

func TestDecodeBody(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
	rec := httptest.NewRecorder()
	if !DecodeBody(rec, req, &dst) {
		t.Fatalf("DecodeBody() = false, body: %s", rec.Body.String())
	}
	if dst.Name != "ok" {
		t.Errorf("Name = %q, want ok", dst.Name)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{bad json`))
	rec = httptest.NewRecorder()
	if DecodeBody(rec, req, &dst) {
		t.Error("DecodeBody() should fail on malformed JSON")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestNotFoundRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundRoute(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, httptest.NewRequest(http.MethodPut, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
