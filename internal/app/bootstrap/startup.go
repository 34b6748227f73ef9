// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/newleaforg/newleaf/internal/app/system/seeding"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are
// complete, but before the HTTP handler is built and requests are served.
//
// Returning a non-nil error aborts startup and prevents the server from
// starting. The context will be cancelled if the process is asked to shut
// down while Startup is running; honor it in any long-running work.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// Seed the initial admin account. Runs after EnsureSchema so the
	// unique index on admin email is already in place.
	if err := seeding.SeedAll(ctx, deps.MongoDatabase, appCfg.InitialAdminEmail, appCfg.InitialAdminPassword, logger); err != nil {
		logger.Error("failed to seed initial data", zap.Error(err))
		return err
	}

	return nil
}
