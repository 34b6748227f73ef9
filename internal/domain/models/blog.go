// internal/domain/models/blog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a content article. Only published posts are visible on
// the public site; drafts are admin-only.
type Blog struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	ImageURL string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Category string             `bson:"category" json:"category"`
	Status   BlogStatus         `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

// IsValidBlogStatus checks if a status is one of the closed set.
func IsValidBlogStatus(s BlogStatus) bool {
	return s == BlogDraft || s == BlogPublished
}

// Blog categories accepted at the boundary.
var BlogCategories = []string{"news", "events", "recovery", "awareness", "community"}

// IsValidBlogCategory checks if a category is one of the accepted set.
func IsValidBlogCategory(c string) bool {
	for _, v := range BlogCategories {
		if v == c {
			return true
		}
	}
	return false
}
