package jwtmw

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails verification for any reason:
// bad signature, wrong algorithm, malformed payload, or expiry in the past.
var ErrInvalidToken = errors.New("invalid token")

// Claims holds the identity decoded from a verified token.
type Claims struct {
	UserID uint
	Email  string
}

// VerifyToken parses and verifies a signed token against the given secret.
// Expired tokens are fully invalid; there are no refresh semantics.
func VerifyToken(secret []byte, tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		// jwt.Parse already rejects expired tokens via the "exp" claim
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: uint(sub), Email: email}, nil
}
