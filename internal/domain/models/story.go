// internal/domain/models/story.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Story represents a user-submitted narrative. Stories are created through
// the public site and require moderation: only approved stories appear in
// public listings.
type Story struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	Author   string             `bson:"author" json:"author"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Approved bool               `bson:"approved" json:"approved"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
