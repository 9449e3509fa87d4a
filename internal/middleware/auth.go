package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recipecatalog/backend/internal/types"
)

// IdentityKey is the context key holding the authenticated author.
const IdentityKey = "created_by"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// OptionalAuth records the bearer token's identity when one is presented.
// Requests without an Authorization header pass through anonymously; a
// malformed or invalid token is rejected.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(IdentityKey, claims.Identity())
		c.Next()
	}
}

// Identity returns the author recorded by OptionalAuth, or "".
func Identity(c *gin.Context) string {
	return c.GetString(IdentityKey)
}
