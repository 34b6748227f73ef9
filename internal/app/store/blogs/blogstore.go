// internal/app/store/blogs/blogstore.go
package blogstore

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

var (
	// ErrNotFound is returned when no blog post matches the lookup.
	ErrNotFound   = errors.New("blog post not found")
	errBadStatus  = errors.New(`status must be "draft"|"published"`)
	errBadCategory = errors.New("invalid blog category")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blogs")}
}

// GetByID loads a blog post by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetPublishedByID loads a blog post that is visible on the public site.
// Drafts are treated as missing.
func (s *Store) GetPublishedByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	filter := bson.M{"_id": id, "status": models.BlogPublished}
	if err := s.c.FindOne(ctx, filter).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a new blog post after validating its enums.
func (s *Store) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	b.ID = primitive.NewObjectID()

	if b.Status == "" {
		b.Status = models.BlogDraft
	}
	if !models.IsValidBlogStatus(b.Status) {
		return models.Blog{}, errBadStatus
	}
	if !models.IsValidBlogCategory(b.Category) {
		return models.Blog{}, errBadCategory
	}

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// Update holds the replaceable fields of a blog post.
type Update struct {
	Title    string
	Content  string
	ImageURL string
	Category string
	Status   models.BlogStatus
}

// Update overwrites a blog post's editable fields.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Blog, error) {
	if !models.IsValidBlogStatus(upd.Status) {
		return nil, errBadStatus
	}
	if !models.IsValidBlogCategory(upd.Category) {
		return nil, errBadCategory
	}

	set := bson.M{
		"title":      upd.Title,
		"content":    upd.Content,
		"image_url":  upd.ImageURL,
		"category":   upd.Category,
		"status":     upd.Status,
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

// Delete removes a blog post by ID.
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

// ListPublished returns published posts, newest first.
func (s *Store) ListPublished(ctx context.Context) ([]models.Blog, error) {
	return s.list(ctx, bson.M{"status": models.BlogPublished})
}

// ListAll returns every post regardless of status, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Blog, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Blog, error) {
	cur, err := s.c.Find(ctx, filter, storeutil.NewestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	blogs := []models.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}
