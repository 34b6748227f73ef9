// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	adminstore "github.com/newleaforg/newleaf/internal/app/store/admins"
	"github.com/newleaforg/newleaf/internal/app/system/authutil"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, email, password string, logger *zap.Logger) error {
	return seedInitialAdmin(ctx, db, email, password, logger)
}

// seedInitialAdmin creates the first superadmin when the admins collection
// is empty. Once any admin exists the configured credentials are ignored, so
// rotating the env vars later has no effect on a live system.
func seedInitialAdmin(ctx context.Context, db *mongo.Database, email, password string, logger *zap.Logger) error {
	store := adminstore.New(db)

	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if email == "" || password == "" {
		logger.Warn("admins collection is empty and no initial admin credentials are configured")
		return nil
	}

	if err := authutil.ValidatePassword(password); err != nil {
		logger.Error("initial admin password rejected", zap.Error(err))
		return err
	}
	hash, err := authutil.HashPassword(password)
	if err != nil {
		return err
	}

	admin, err := store.Create(ctx, models.Admin{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		Active:       true,
	})
	if err != nil {
		// Lost a race with a concurrent instance seeding the same admin.
		if err == adminstore.ErrDuplicateEmail {
			return nil
		}
		return err
	}

	logger.Info("seeded initial superadmin",
		zap.String("email", admin.Email),
		zap.String("id", admin.ID.Hex()))
	return nil
}
