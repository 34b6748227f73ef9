// internal/domain/models/gallery.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Album represents a gallery entry. ImageURL always points at the hosted
// copy of the image: inbound base64 payloads are pushed to the image store
// before the document is persisted, never stored raw.
type Album struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	ImageURL string             `bson:"image_url" json:"image_url"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
