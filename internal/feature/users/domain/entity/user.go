// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the places the user created.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Image is the URL of the user's avatar image.
	Image string `gorm:"size:512"`

	// PlaceIDs holds the ids of the places created by this user, in creation
	// order. It is derived from the places table by the repository and is not
	// a column of its own.
	PlaceIDs []uint `gorm:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
