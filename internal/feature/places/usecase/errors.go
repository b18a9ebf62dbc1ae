// Package usecase implements the business logic for the places feature.
package usecase

import "errors"

var (
	// ErrPlaceNotFound is returned when a place cannot be found by ID.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrUserNotFound is returned when a referenced creator does not exist.
	ErrUserNotFound = errors.New("user not found")
)
