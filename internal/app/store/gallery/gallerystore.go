// internal/app/store/gallery/gallerystore.go
package gallerystore

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

// ErrNotFound is returned when no album matches the lookup.
var ErrNotFound = errors.New("album not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gallery")}
}

// GetByID loads an album by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Album, error) {
	var a models.Album
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a new album. ImageURL must already be a hosted URL.
func (s *Store) Create(ctx context.Context, a models.Album) (models.Album, error) {
	a.ID = primitive.NewObjectID()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Album{}, err
	}
	return a, nil
}

// Update overwrites an album's name and image URL.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name, imageURL string) (*models.Album, error) {
	set := bson.M{
		"name":       name,
		"image_url":  imageURL,
		"updated_at": time.Now(),
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes an album by ID.
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

// ListAll returns all albums, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Album, error) {
	cur, err := s.c.Find(ctx, bson.M{}, storeutil.NewestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	albums := []models.Album{}
	if err := cur.All(ctx, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}
