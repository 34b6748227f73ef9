// internal/domain/models/volunteer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Volunteer represents a volunteer application. Email and phone are each
// unique across volunteers, enforced by unique indexes.
type Volunteer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"full_name" json:"full_name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	WhatsAppNumber string             `bson:"whatsapp_number,omitempty" json:"whatsapp_number,omitempty"`
	Gender         string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	TimeCommitment []string           `bson:"time_commitment" json:"time_commitment"`
	Status         VolunteerStatus    `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// VolunteerStatus is the review state of a volunteer application.
type VolunteerStatus string

const (
	VolunteerPending  VolunteerStatus = "pending"
	VolunteerApproved VolunteerStatus = "approved"
	VolunteerRejected VolunteerStatus = "rejected"
)

// IsValidVolunteerStatus checks if a status is one of the closed set.
func IsValidVolunteerStatus(s VolunteerStatus) bool {
	switch s {
	case VolunteerPending, VolunteerApproved, VolunteerRejected:
		return true
	}
	return false
}
