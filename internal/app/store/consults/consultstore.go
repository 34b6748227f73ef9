// internal/app/store/consults/consultstore.go
package consultstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newleaforg/newleaf/internal/app/store/storeutil"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

// ErrNotFound is returned when no consult request matches the lookup.
var ErrNotFound = errors.New("consult request not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("consult_requests")}
}

// GetByID loads a consult request by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ConsultRequest, error) {
	var cr models.ConsultRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cr, nil
}

// Create inserts a new consult request. Inbound requests always start
// Pending with an empty contact history.
func (s *Store) Create(ctx context.Context, cr models.ConsultRequest) (models.ConsultRequest, error) {
	cr.ID = primitive.NewObjectID()
	cr.Status = models.ConsultPending
	cr.ContactedHistory = []models.ContactEntry{}

	now := time.Now()
	cr.CreatedAt = now
	cr.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, cr); err != nil {
		return models.ConsultRequest{}, err
	}
	return cr, nil
}

// ApplyTransition sets the request's status and, for a Contacted transition,
// pushes the new history entry in the same update. History is append-only
// from the store's point of view.
func (s *Store) ApplyTransition(ctx context.Context, id primitive.ObjectID, t models.ConsultTransition) (*models.ConsultRequest, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     t.Status,
			"updated_at": time.Now(),
		},
	}
	if t.AppendEntry != nil {
		update["$push"] = bson.M{"contacted_history": *t.AppendEntry}
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a consult request by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll returns consult requests, newest first, optionally filtered by status.
func (s *Store) ListAll(ctx context.Context, status models.ConsultStatus) ([]models.ConsultRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := s.c.Find(ctx, filter, storeutil.NewestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := []models.ConsultRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
