// internal/domain/models/client.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client represents a program participant in the admin-only CRM.
//
// ClientID is a human-assigned business key, distinct from the Mongo _id,
// and unique across clients.
type Client struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID string             `bson:"client_id" json:"client_id"`
	Name     string             `bson:"name" json:"name"`
	Contact  string             `bson:"contact" json:"contact"`
	JoinDate time.Time          `bson:"join_date" json:"join_date"`
	Status   ClientStatus       `bson:"status" json:"status"`
	Program  string             `bson:"program,omitempty" json:"program,omitempty"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ClientStatus is the recovery state of a client.
type ClientStatus string

const (
	ClientNew           ClientStatus = "New"
	ClientUnderRecovery ClientStatus = "Under Recovery"
	ClientRecovered     ClientStatus = "Recovered"
)

// IsValidClientStatus checks if a status is one of the closed set.
func IsValidClientStatus(s ClientStatus) bool {
	switch s {
	case ClientNew, ClientUnderRecovery, ClientRecovered:
		return true
	}
	return false
}
