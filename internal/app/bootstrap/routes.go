// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	adminfeature "github.com/newleaforg/newleaf/internal/app/features/adminapi"
	authfeature "github.com/newleaforg/newleaf/internal/app/features/authapi"
	blogfeature "github.com/newleaforg/newleaf/internal/app/features/blogapi"
	clientfeature "github.com/newleaforg/newleaf/internal/app/features/clientapi"
	consultfeature "github.com/newleaforg/newleaf/internal/app/features/consultapi"
	contactfeature "github.com/newleaforg/newleaf/internal/app/features/contactapi"
	dashboardfeature "github.com/newleaforg/newleaf/internal/app/features/dashboardapi"
	galleryfeature "github.com/newleaforg/newleaf/internal/app/features/galleryapi"
	healthfeature "github.com/newleaforg/newleaf/internal/app/features/health"
	storyfeature "github.com/newleaforg/newleaf/internal/app/features/storyapi"
	volunteerfeature "github.com/newleaforg/newleaf/internal/app/features/volunteerapi"
	adminstore "github.com/newleaforg/newleaf/internal/app/store/admins"
	blogstore "github.com/newleaforg/newleaf/internal/app/store/blogs"
	clientstore "github.com/newleaforg/newleaf/internal/app/store/clients"
	consultstore "github.com/newleaforg/newleaf/internal/app/store/consults"
	contactstore "github.com/newleaforg/newleaf/internal/app/store/contacts"
	dashboardstore "github.com/newleaforg/newleaf/internal/app/store/dashboard"
	gallerystore "github.com/newleaforg/newleaf/internal/app/store/gallery"
	storystore "github.com/newleaforg/newleaf/internal/app/store/stories"
	volunteerstore "github.com/newleaforg/newleaf/internal/app/store/volunteers"
	"github.com/newleaforg/newleaf/internal/app/system/apicors"
	"github.com/newleaforg/newleaf/internal/app/system/auth"
	"github.com/newleaforg/newleaf/internal/app/system/images"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The API surface splits into two groups:
//   - Public routes: blog/gallery reads, story/volunteer/consult/contact
//     submissions, and the auth endpoints
//   - Admin routes under /api/admin: everything the back-office dashboard
//     uses, gated by the adminToken session cookie
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the token manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	tokens, err := auth.NewTokenManager(appCfg.TokenSecret, appCfg.TokenMaxAge, secure, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the AdminFetcher so LoadAdmin fetches fresh admin data on each
	// request. This ensures deactivated accounts take effect immediately.
	tokens.SetAdminFetcher(adminstore.NewFetcher(deps.MongoDatabase, logger))

	// Stores
	admins := adminstore.New(deps.MongoDatabase)
	blogs := blogstore.New(deps.MongoDatabase)
	stories := storystore.New(deps.MongoDatabase)
	albums := gallerystore.New(deps.MongoDatabase)
	clients := clientstore.New(deps.MongoDatabase)
	consults := consultstore.New(deps.MongoDatabase)
	contacts := contactstore.New(deps.MongoDatabase)
	volunteers := volunteerstore.New(deps.MongoDatabase)
	dashboard := dashboardstore.New(deps.MongoDatabase)

	// Uploader turns inline base64 images into hosted files so documents
	// only ever store URLs.
	uploader := images.NewUploader(deps.FileStorage)

	// Handlers
	authHandler := authfeature.NewHandler(admins, tokens, deps.Mailer, appCfg.ResetURL, logger)
	blogHandler := blogfeature.NewHandler(blogs, uploader, logger)
	storyHandler := storyfeature.NewHandler(stories, logger)
	galleryHandler := galleryfeature.NewHandler(albums, uploader, logger)
	clientHandler := clientfeature.NewHandler(clients, logger)
	consultHandler := consultfeature.NewHandler(consults, deps.Mailer, appCfg.NotifyEmail, logger)
	contactHandler := contactfeature.NewHandler(contacts, deps.Mailer, appCfg.NotifyEmail, logger)
	volunteerHandler := volunteerfeature.NewHandler(volunteers, logger)
	dashboardHandler := dashboardfeature.NewHandler(dashboard, logger)
	adminHandler := adminfeature.NewHandler(admins, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	// Global middleware. CORS must run early so preflight requests are
	// answered before anything else. LoadAdmin attaches the session admin
	// when the cookie is present; routes that require it use RequireAdmin.
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(apicors.Middleware(appCfg.AllowedOrigins...))
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))
	r.Use(tokens.LoadAdmin)

	// Health check endpoints for load balancers and orchestrators
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	r.Mount("/api/auth", authfeature.Routes(authHandler))

	// Public content and submission routes
	r.Mount("/api/blogs", blogfeature.PublicRoutes(blogHandler))
	r.Mount("/api/stories", storyfeature.PublicRoutes(storyHandler))
	r.Mount("/api/gallery", galleryfeature.PublicRoutes(galleryHandler))
	r.Mount("/api/volunteers", volunteerfeature.PublicRoutes(volunteerHandler))
	r.Mount("/api/consults", consultfeature.PublicRoutes(consultHandler))
	r.Mount("/api/contacts", contactfeature.PublicRoutes(contactHandler))

	// Admin back-office routes
	r.Route("/api/admin", func(ar chi.Router) {
		ar.Use(tokens.RequireAdmin)
		ar.Mount("/blogs", blogfeature.AdminRoutes(blogHandler))
		ar.Mount("/stories", storyfeature.AdminRoutes(storyHandler))
		ar.Mount("/gallery", galleryfeature.AdminRoutes(galleryHandler))
		ar.Mount("/volunteers", volunteerfeature.AdminRoutes(volunteerHandler))
		ar.Mount("/consults", consultfeature.AdminRoutes(consultHandler))
		ar.Mount("/contacts", contactfeature.AdminRoutes(contactHandler))
		ar.Mount("/clients", clientfeature.Routes(clientHandler))
		ar.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		// Account management is superadmin only
		ar.Group(func(sr chi.Router) {
			sr.Use(tokens.RequireRole(models.RoleSuperAdmin))
			sr.Mount("/admins", adminfeature.Routes(adminHandler))
		})
	})

	// Uploaded files (local storage only)
	// When using local storage, serve files from the configured path
	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	// Unknown routes still answer with the JSON envelope
	r.NotFound(webapi.NotFoundRoute)
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	return r, nil
}
