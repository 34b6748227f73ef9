// Package apicors provides CORS middleware for the REST API.
//
// The admin dashboard and public site are separate React origins that send
// the adminToken cookie cross-site, so the middleware must:
//   - Echo back a specific allowed origin (never "*") so that
//     Access-Control-Allow-Credentials can be true
//   - Allow credentialed requests
//   - Grant the verb set the API actually uses
package apicors

import (
	"net/http"
)

// Middleware returns CORS middleware that allows the given origins with
// credentials. Preflight OPTIONS requests are answered directly.
//
// Usage in routes.go:
//
//	r.Use(apicors.Middleware(appCfg.CORSOrigin))
func Middleware(allowedOrigins ...string) func(http.Handler) http.Handler {
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o != "" {
			originSet[o] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" {
				if _, allowed := originSet[origin]; allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Vary", "Origin")
				}
				// If origin not allowed, don't set CORS headers (browser will block)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
