// internal/app/store/admins/fetcher.go
package adminstore

import (
	"context"

	"github.com/newleaforg/newleaf/internal/app/system/auth"
	"github.com/newleaforg/newleaf/internal/app/system/timeouts"
	"github.com/newleaforg/newleaf/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Fetcher implements auth.AdminFetcher backed by the admins collection.
// It is queried on every authenticated request so that deactivated
// accounts and role changes take effect immediately.
type Fetcher struct {
	admins *mongo.Collection
	logger *zap.Logger
}

// NewFetcher creates an AdminFetcher that queries the given database.
func NewFetcher(db *mongo.Database, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		admins: db.Collection("admins"),
		logger: logger,
	}
}

// FetchAdmin retrieves an admin by ID and returns nil if the admin is not
// found, inactive, or if any error occurs. This implements auth.AdminFetcher.
func (f *Fetcher) FetchAdmin(ctx context.Context, adminID string) *auth.SessionAdmin {
	oid, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var a models.Admin
	proj := options.FindOne().SetProjection(bson.M{
		"_id":    1,
		"email":  1,
		"role":   1,
		"active": 1,
	})
	if err := f.admins.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&a); err != nil {
		return nil
	}

	if !a.Active {
		return nil
	}

	return &auth.SessionAdmin{
		ID:    a.ID.Hex(),
		Email: a.Email,
		Role:  string(a.Role),
	}
}
