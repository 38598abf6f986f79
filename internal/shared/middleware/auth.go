package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wishbox-backend/internal/shared/response"
	"wishbox-backend/pkg/jwt"
)

const (
	// ContextUserID is set on authenticated requests.
	ContextUserID = "userID"
)

// Auth requires a valid bearer token. Owner-scoped routes use this.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromHeader(c, jwtManager)
		if !ok {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuth extracts the caller identity when a valid bearer token is
// present but never rejects the request. Guest routes use this: a viewer
// may reserve anonymously, yet a logged-in owner must still be recognized
// (private wishlist visibility, self-reserve block).
func OptionalAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := userIDFromHeader(c, jwtManager); ok {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}

func userIDFromHeader(c *gin.Context, jwtManager *jwt.Manager) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	// Expect "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}

	claims, err := jwtManager.ValidateToken(parts[1])
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// UserID returns the authenticated user id from the gin context.
// Second return is false on guest requests.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
