package jwtmw

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"places_backend/internal/api"
)

const (
	// ContextUserID is the gin context key holding the authenticated user's id.
	ContextUserID = "userID"
	// ContextEmail is the gin context key holding the authenticated user's email.
	ContextEmail = "userEmail"
	// EnvKeyJWTSecret is the environment variable holding the signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"
)

// unauthenticatedMessage is the single message returned for every gate
// failure so the response does not reveal which check rejected the request.
const unauthenticatedMessage = "Unauthenticated, please log in"

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only. On success the decoded
// identity is attached to the request context for downstream handlers.
// Downstream handlers do not yet compare it against a resource's creator.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. CORS preflight requests carry no credentials and pass through
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		// 2. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusForbidden,
				api.ErrorResponse{Message: unauthenticatedMessage, Code: http.StatusForbidden})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				api.ErrorResponse{Message: unauthenticatedMessage, Code: http.StatusForbidden})
			return
		}

		// 3. Load secret key from environment variable
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				api.ErrorResponse{Message: "server misconfigured", Code: http.StatusInternalServerError})
			return
		}

		// 4. Parse and verify JWT signature and expiry
		claims, err := VerifyToken([]byte(secret), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				api.ErrorResponse{Message: unauthenticatedMessage, Code: http.StatusForbidden})
			return
		}

		// 5. Attach identity and pass control to the next handler
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
