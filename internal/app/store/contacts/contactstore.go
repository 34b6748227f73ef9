// internal/app/store/contacts/contactstore.go
package contactstore

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

// ErrNotFound is returned when no contact message matches the lookup.
var ErrNotFound = errors.New("contact message not found")

// Store is append-only apart from deletion: contact messages are never
// edited after they arrive.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contacts")}
}

// Create inserts a new contact message.
func (s *Store) Create(ctx context.Context, ct models.Contact) (models.Contact, error) {
	ct.ID = primitive.NewObjectID()
	ct.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, ct); err != nil {
		return models.Contact{}, err
	}
	return ct, nil
}

// Delete removes a contact message by ID.
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

// ListAll returns all contact messages, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Contact, error) {
	cur, err := s.c.Find(ctx, bson.M{}, storeutil.NewestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	contacts := []models.Contact{}
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
