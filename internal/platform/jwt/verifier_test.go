package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestVerifyToken_RoundTrip は発行したトークンの検証で同じクレームが得られることを検証します。
func TestVerifyToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		email  string
	}{
		{"basic user", 1, "user@example.com"},
		{"user with tagged email", 42, "user+tag@example.com"},
		{"large user id", 999999, "test@test.com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			claims, err := VerifyToken([]byte("test-secret"), tokenStr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("expected user id %d, got %d", tt.userID, claims.UserID)
			}
			if claims.Email != tt.email {
				t.Errorf("expected email %q, got %q", tt.email, claims.Email)
			}
		})
	}
}

// TestVerifyToken_Invalid は不正なトークンがすべてErrInvalidTokenで拒否されることを検証します。
func TestVerifyToken_Invalid(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)
	valid, _ := gen.GenerateToken(1, "user@example.com")

	expiredGen := NewGenerator("test-secret", -time.Hour)
	expired, _ := expiredGen.GenerateToken(1, "user@example.com")

	// Unsigned token with the "none" algorithm
	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   float64(1),
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	noneStr, _ := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)

	// Signed token without the email claim
	noEmail := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noEmailStr, _ := noEmail.SignedString([]byte("test-secret"))

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"malformed token", "test-secret", "not.a.valid.token"},
		{"random string", "test-secret", "randomstring"},
		{"empty token", "test-secret", ""},
		{"wrong secret", "other-secret", valid},
		{"expired token", "test-secret", expired},
		{"none algorithm", "test-secret", noneStr},
		{"missing email claim", "test-secret", noEmailStr},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := VerifyToken([]byte(tt.secret), tt.token)
			if err == nil {
				t.Fatal("expected error but got nil")
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got: %v", err)
			}
			if claims != nil {
				t.Errorf("expected nil claims, got %+v", claims)
			}
		})
	}
}

// TestVerifyToken_ExpiryBoundary は有効期限を過ぎた瞬間からトークンが完全に無効になることを検証します。
func TestVerifyToken_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	// 短命のトークンでも発行直後には検証を通る
	gen := NewGenerator("test-secret", 30*time.Second)
	tokenStr, err := gen.GenerateToken(7, "short@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := VerifyToken([]byte("test-secret"), tokenStr); err != nil {
		t.Errorf("expected token to verify inside its lifetime: %v", err)
	}
}
