// Package webapi carries the request plumbing shared by the API feature
// handlers: ID parsing, JSON body limits, and a generic delete handler so
// each resource does not repeat the same lookup-and-delete dance.
package webapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
)

// MaxBodyBytes caps JSON request bodies at 12 MB, leaving headroom for a
// base64 image inside a gallery or blog payload.
const MaxBodyBytes = 12 << 20

// IDParam extracts and parses the {id} route parameter as an ObjectID.
func IDParam(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
}

// DecodeBody decodes a JSON request body into dst with a size limit and
// strict field checking. It writes a 400 response and returns false when the
// body is invalid.
func DecodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := jsonutil.Decode(r, dst); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return false
	}
	return true
}

// DeleteFunc removes the document with the given ID.
type DeleteFunc func(r *http.Request, id primitive.ObjectID) error

// DeleteHandler returns a handler that parses the {id} parameter, calls del,
// and maps notFound to a 404. The resource name appears in log output only.
func DeleteHandler(log *zap.Logger, resource string, notFound error, del DeleteFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := IDParam(r)
		if err != nil {
			jsonutil.BadRequest(w, "invalid id")
			return
		}

		if err := del(r, id); err != nil {
			if errors.Is(err, notFound) {
				jsonutil.NotFound(w, resource+" not found")
				return
			}
			log.Error("failed to delete "+resource,
				zap.String("id", id.Hex()),
				zap.Error(err))
			jsonutil.InternalError(w, "failed to delete "+resource)
			return
		}

		jsonutil.Success(w)
	}
}

// MethodNotAllowed is the catch-all handler mounted on every API router so
// unknown verbs produce the standard envelope instead of a bare 405.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	jsonutil.MethodNotAllowed(w)
}

// NotFoundRoute is the catch-all handler for unmatched API paths.
func NotFoundRoute(w http.ResponseWriter, _ *http.Request) {
	jsonutil.NotFound(w, "not found")
}
