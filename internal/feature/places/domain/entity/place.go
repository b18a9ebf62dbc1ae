// Package entity defines the domain entities for the places feature.
package entity

import "time"

// Place represents a geotagged record created by a user.
type Place struct {
	// ID is the unique identifier for the place.
	ID uint `gorm:"primaryKey"`

	// Title is the display title of the place.
	Title string `gorm:"size:255;not null"`

	// Description is a free-form description of the place.
	Description string `gorm:"size:2048;not null"`

	// Address is the postal address of the place.
	Address string `gorm:"size:512;not null"`

	// Lat and Lng are the coordinates of the place.
	Lat float64 `gorm:"not null"`
	Lng float64 `gorm:"not null"`

	// Image is the URL of a representative image for the place.
	Image string `gorm:"size:512"`

	// CreatorID is the id of the user who created the place.
	// It never changes after creation.
	CreatorID uint `gorm:"not null;index"`

	// CreatedAt is the timestamp when the place was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the place was last updated.
	UpdatedAt time.Time
}
