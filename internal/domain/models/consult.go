// internal/domain/models/consult.go
package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConsultRequest represents an inbound service-booking lead submitted
// through the public site.
type ConsultRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Service      string             `bson:"service" json:"service"`
	ServiceOther string             `bson:"service_other,omitempty" json:"service_other,omitempty"`
	Date         string             `bson:"date,omitempty" json:"date,omitempty"`
	Mode         string             `bson:"mode,omitempty" json:"mode,omitempty"`
	Message      string             `bson:"message,omitempty" json:"message,omitempty"`
	Consent      bool               `bson:"consent" json:"consent"`
	Status       ConsultStatus      `bson:"status" json:"status"`

	// ContactedHistory is an ordered log of contact attempts. Entries are
	// appended only when the status transitions to Contacted; every other
	// transition leaves the history untouched.
	ContactedHistory []ContactEntry `bson:"contacted_history" json:"contacted_history"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ContactEntry records a single contact attempt.
type ContactEntry struct {
	ContactedBy string    `bson:"contacted_by" json:"contactedBy"`
	ContactedAt time.Time `bson:"contacted_at" json:"contactedAt"`
}

// ConsultStatus is the workflow state of a consult request.
type ConsultStatus string

const (
	ConsultPending   ConsultStatus = "Pending"
	ConsultAccepted  ConsultStatus = "Accepted"
	ConsultContacted ConsultStatus = "Contacted"
	ConsultRejected  ConsultStatus = "Rejected"
)

// IsValidConsultStatus checks if a status is one of the closed set.
func IsValidConsultStatus(s ConsultStatus) bool {
	switch s {
	case ConsultPending, ConsultAccepted, ConsultContacted, ConsultRejected:
		return true
	}
	return false
}

// ErrInvalidConsultStatus is returned by ConsultTransition for statuses
// outside the closed set.
var ErrInvalidConsultStatus = errors.New("invalid consult request status")

// ConsultTransition describes the document mutation for a status change.
// AppendEntry is non-nil exactly when the transition is to Contacted; all
// other transitions only overwrite the status. Keeping the rule here means
// handlers and stores cannot disagree about when history grows.
type ConsultTransition struct {
	Status      ConsultStatus
	AppendEntry *ContactEntry
}

// TransitionConsult computes the mutation for moving a request to the given
// status. by is the display name recorded in the history entry for a
// Contacted transition and is ignored otherwise.
func TransitionConsult(status ConsultStatus, by string, at time.Time) (ConsultTransition, error) {
	if !IsValidConsultStatus(status) {
		return ConsultTransition{}, ErrInvalidConsultStatus
	}
	t := ConsultTransition{Status: status}
	if status == ConsultContacted {
		t.AppendEntry = &ContactEntry{ContactedBy: by, ContactedAt: at}
	}
	return t, nil
}
