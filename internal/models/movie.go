package models

import (
	"time"

	"github.com/google/uuid"
)

// MovieDB represents a movie record in the database.
type MovieDB struct {
	MovieID        uuid.UUID `json:"id" db:"movie_id"`                     // Primary key
	Title          string    `json:"title" db:"title"`                     // Movie title
	PublishingYear int       `json:"publishingYear" db:"publishing_year"`  // Publishing year
	Poster         string    `json:"poster" db:"poster"`                   // Poster path under the uploads prefix
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`            // Creation timestamp
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`            // Last update timestamp
}

// MovieFilter holds optional movie list filters. Nil fields are not applied.
type MovieFilter struct {
	Title *string // Case-insensitive substring match
	Year  *int    // Exact match
}
