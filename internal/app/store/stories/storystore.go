// internal/app/store/stories/storystore.go
package storystore

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

// ErrNotFound is returned when no story matches the lookup.
var ErrNotFound = errors.New("story not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("stories")}
}

// GetByID loads a story by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Story, error) {
	var st models.Story
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

// Create inserts a new story. Public submissions always start unapproved;
// the caller decides the initial flag for admin-created stories.
func (s *Store) Create(ctx context.Context, st models.Story) (models.Story, error) {
	st.ID = primitive.NewObjectID()

	now := time.Now()
	st.CreatedAt = now
	st.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, st); err != nil {
		return models.Story{}, err
	}
	return st, nil
}

// Update holds the replaceable fields of a story.
type Update struct {
	Title    string
	Content  string
	Author   string
	Category string
	Approved bool
}

// Update overwrites a story's editable fields, including the approved flag.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Story, error) {
	set := bson.M{
		"title":      upd.Title,
		"content":    upd.Content,
		"author":     upd.Author,
		"category":   upd.Category,
		"approved":   upd.Approved,
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

// SetApproved flips a story's moderation flag without touching content.
func (s *Store) SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) (*models.Story, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"approved":   approved,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a story by ID.
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

// ListApproved returns approved stories, newest first.
func (s *Store) ListApproved(ctx context.Context) ([]models.Story, error) {
	return s.list(ctx, bson.M{"approved": true})
}

// ListAll returns every story regardless of moderation state, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Story, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Story, error) {
	cur, err := s.c.Find(ctx, filter, storeutil.NewestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stories := []models.Story{}
	if err := cur.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}
