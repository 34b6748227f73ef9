// internal/domain/models/admin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin represents a back-office operator.
//
// Auth fields:
//   - Email: what the admin types to log in (stored lowercase, trimmed)
//   - PasswordHash: bcrypt hash, never serialized to JSON
//   - Active: inactive admins cannot authenticate, even with valid credentials
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Active       bool               `bson:"active" json:"active"`

	// Password reset fields. The token lives on the admin record and is
	// single-use: a successful reset clears both fields in one update.
	ResetToken          *string    `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiresAt *time.Time `bson:"reset_token_expires_at,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// AllRoles returns all valid admin roles.
func AllRoles() []string {
	return []string{RoleAdmin, RoleSuperAdmin}
}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}
