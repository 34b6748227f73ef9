// Package dashboardapi provides the admin dashboard aggregates: headline
// counts across the content and inbox collections plus month-bucketed
// activity series for the charts.
package dashboardapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	dashboardstore "github.com/newleaforg/newleaf/internal/app/store/dashboard"
	"github.com/newleaforg/newleaf/internal/app/system/jsonutil"
	"github.com/newleaforg/newleaf/internal/app/system/webapi"
)

// Handler handles dashboard API requests.
type Handler struct {
	dashboard *dashboardstore.Store
	logger    *zap.Logger
}

// NewHandler creates a new dashboardapi handler.
func NewHandler(dashboard *dashboardstore.Store, logger *zap.Logger) *Handler {
	return &Handler{dashboard: dashboard, logger: logger}
}

// Routes returns the dashboard endpoint. The caller mounts it behind
// RequireAdmin.
//
// When mounted at /api/admin/dashboard:
//   - GET /api/admin/dashboard?months=12
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(webapi.MethodNotAllowed)

	r.Get("/", h.Get)
	return r
}

// Get handles GET /api/admin/dashboard. months bounds the series window and
// defaults to 12.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	months := 12
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 60 {
			jsonutil.BadRequest(w, "months must be between 1 and 60")
			return
		}
		months = n
	}

	counts, err := h.dashboard.GetCounts(r.Context())
	if err != nil {
		h.logger.Error("failed to load dashboard counts", zap.Error(err))
		jsonutil.InternalError(w, "failed to load dashboard")
		return
	}

	series, err := h.dashboard.GetSeries(r.Context(), months)
	if err != nil {
		h.logger.Error("failed to load dashboard series", zap.Error(err))
		jsonutil.InternalError(w, "failed to load dashboard")
		return
	}

	jsonutil.OK(w, map[string]any{
		"counts": counts,
		"series": series,
	})
}
