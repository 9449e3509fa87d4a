package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token issued by the identity provider
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Identity returns the value recorded as a recipe's author.
func (c *TokenClaims) Identity() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}
