// Package hash provides one-way password hashing built on bcrypt.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost factor used in production.
// High enough to resist brute force, low enough for interactive login.
const DefaultCost = 12

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a salted, one-way digest of the given password.
	Hash(password string) (string, error)
	// Compare checks a plaintext password against a stored digest.
	// It returns nil on match and an error otherwise.
	Compare(hashed, password string) error
}

// bcryptHasher implements the Hasher interface with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-backed Hasher with the given cost factor.
// Costs below bcrypt's minimum fall back to DefaultCost.
func NewBcryptHasher(cost int) *bcryptHasher {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash generates a bcrypt digest with a per-call random salt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare verifies a password against a bcrypt digest in constant time.
// A malformed digest also yields an error.
func (h *bcryptHasher) Compare(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
