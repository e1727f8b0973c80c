package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfilePic is used when registration supplies no profile picture.
const DefaultProfilePic = "https://icon-library.com/images/male-avatar-icon/male-avatar-icon-6.jpg"

// UserDB represents a user record in the database.
// The password hash is never serialized in API responses.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`             // Primary key
	Name         string    `json:"name" db:"name"`              // Display name
	Email        string    `json:"email" db:"email"`            // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`        // Hashed password, excluded from JSON
	Pic          string    `json:"pic" db:"pic"`                // Profile picture URL
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`   // Last update timestamp
}
