package auth

// Terminology: Admin Identifiers
//   - AdminID / adminID / admin_id: The MongoDB ObjectID (_id) that uniquely identifies an admin record
//   - Email: The address the admin types to log in (stored lowercase, trimmed)

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "adminToken"

// TokenManager issues and verifies the signed session tokens stored in the
// adminToken cookie. Use NewTokenManager to create an instance.
type TokenManager struct {
	secret       []byte
	maxAge       time.Duration
	secure       bool
	logger       *zap.Logger
	adminFetcher AdminFetcher
}

// TokenConfigError is returned when token configuration is invalid.
type TokenConfigError struct {
	Message string
}

func (e *TokenConfigError) Error() string {
	return e.Message
}

// NewTokenManager creates a new TokenManager.
//
// Parameters:
//   - secret: HMAC signing key for tokens (must be ≥32 chars in production)
//   - maxAge: token and cookie lifetime (e.g., 7*24*time.Hour)
//   - secure: if true, cookies are Secure + SameSite=None (HTTPS production
//     with a separate frontend origin); if false, SameSite=Lax for local dev
//   - logger: zap logger for verification failure logging
//
// Returns an error if the secret is empty or too weak for production mode.
func NewTokenManager(secret string, maxAge time.Duration, secure bool, logger *zap.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, &TokenConfigError{Message: "token secret is empty; provide ≥32 random chars"}
	}

	isWeak := len(secret) < 32 || isDefaultSecret(secret)
	if secure {
		if isWeak {
			return nil, &TokenConfigError{
				Message: "token secret is too weak for production; provide ≥32 random chars (not the default dev key)",
			}
		}
	} else if isWeak {
		logger.Warn("token secret is weak; 32+ random chars required in production",
			zap.Int("length", len(secret)),
			zap.Bool("is_default", isDefaultSecret(secret)))
	}

	logger.Info("token manager initialized",
		zap.Bool("secure", secure),
		zap.Duration("max_age", maxAge))

	return &TokenManager{
		secret: []byte(secret),
		maxAge: maxAge,
		secure: secure,
		logger: logger,
	}, nil
}

// SetAdminFetcher sets the AdminFetcher used by LoadAdmin to resolve the
// admin record on each request. This must be called after database
// initialization.
func (tm *TokenManager) SetAdminFetcher(af AdminFetcher) {
	tm.adminFetcher = af
}

/*─────────────────────────────────────────────────────────────────────────────*
| Token issuance and verification                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// Claims are the JWT claims embedded in the session token. Only the admin's
// ObjectID travels in the token; everything else is fetched fresh per request.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken creates a signed token for the admin with the configured expiry.
func (tm *TokenManager) IssueToken(adminID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.maxAge)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// VerifyToken parses and verifies a token string, returning the embedded
// admin ObjectID. Any failure (tampered signature, expired, wrong algorithm,
// malformed subject) is an error; callers treat every error as
// "unauthenticated" and must never surface it to the client.
func (tm *TokenManager) VerifyToken(tokenStr string) (primitive.ObjectID, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(t *jwt.Token) (any, error) { return tm.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(claims.Subject)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Cookie handling                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// SetCookie writes the adminToken cookie carrying the signed token.
// SameSite=None is required in production because the React frontends live
// on a separate origin; locally Lax works and avoids requiring HTTPS.
func (tm *TokenManager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tm.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   tm.secure,
		SameSite: tm.sameSite(),
	})
}

// ClearCookie overwrites the adminToken cookie with an empty value and a
// zero max-age so the browser drops it immediately.
func (tm *TokenManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   tm.secure,
		SameSite: tm.sameSite(),
	})
}

func (tm *TokenManager) sameSite() http.SameSite {
	if tm.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

/*─────────────────────────────────────────────────────────────────────────────*
| AdminFetcher interface                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// AdminFetcher fetches fresh admin data from the database.
// Implementations return nil if the admin is not found or inactive.
type AdminFetcher interface {
	// FetchAdmin retrieves an admin by ObjectID hex. Returns nil if the
	// admin is missing, inactive, or any other condition that should
	// invalidate the session.
	FetchAdmin(ctx context.Context, adminID string) *SessionAdmin
}

// SessionAdmin represents the authenticated admin in the request context.
// It is fetched fresh from the database on each request so deactivated
// accounts and role changes take effect immediately.
type SessionAdmin struct {
	ID    string
	Email string
	Role  string
}

// AdminID returns the admin's ID as an ObjectID.
// If the ID is invalid, returns a zero ObjectID.
func (a *SessionAdmin) AdminID() primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

type ctxKey string

const currentAdminKey ctxKey = "currentAdmin"

// CurrentAdmin returns the admin & "found?" flag from the request context.
func CurrentAdmin(r *http.Request) (*SessionAdmin, bool) {
	a, ok := r.Context().Value(currentAdminKey).(*SessionAdmin)
	return a, ok
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadAdmin returns middleware that resolves the adminToken cookie and
// injects the admin into context when the token verifies and the admin is
// active. Verification failures never propagate: the request simply
// continues unauthenticated.
func (tm *TokenManager) LoadAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(CookieName)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		adminID, err := tm.VerifyToken(c.Value)
		if err != nil {
			// Expired tokens are routine; anything else is worth a closer look.
			if strings.Contains(err.Error(), "expired") {
				tm.logger.Debug("session token expired", zap.String("path", r.URL.Path))
			} else {
				tm.logger.Warn("session token rejected",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Error(err))
			}
			next.ServeHTTP(w, r)
			return
		}

		if tm.adminFetcher != nil {
			if a := tm.adminFetcher.FetchAdmin(r.Context(), adminID.Hex()); a != nil {
				r = withAdmin(r, a)
			} else {
				tm.logger.Info("session invalidated: admin not found or inactive",
					zap.String("admin_id", adminID.Hex()),
					zap.String("path", r.URL.Path))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin returns middleware that ensures there is an admin in context,
// responding with a 401 JSON envelope otherwise.
func (tm *TokenManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentAdmin(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"unauthorized"}`))
	})
}

// RequireRole returns middleware that ensures the admin in context holds one
// of the allowed roles. Missing admin is 401; wrong role is 403.
func (tm *TokenManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, ok := CurrentAdmin(r)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"error":"unauthorized"}`))
				return
			}
			if _, has := set[strings.ToLower(a.Role)]; !has {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"success":false,"error":"forbidden"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func withAdmin(r *http.Request, a *SessionAdmin) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentAdminKey, a))
}

// WithTestAdmin injects a SessionAdmin into the request context for testing.
func WithTestAdmin(r *http.Request, a *SessionAdmin) *http.Request {
	return withAdmin(r, a)
}

// isDefaultSecret checks if the secret appears to be a default/placeholder value.
func isDefaultSecret(secret string) bool {
	lower := strings.ToLower(secret)
	patterns := []string{
		"dev-only",
		"change-me",
		"placeholder",
		"default",
		"example",
		"insecure",
		"test-key",
		"secret123",
		"password",
	}
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
