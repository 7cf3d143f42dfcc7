package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims represents the claims carried in a JWT token.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// IsAdmin reports whether the token was issued to an admin.
func (c *TokenClaims) IsAdmin() bool {
	return c.Role == "admin"
}

// CanMutate is the owner-or-admin rule: a subject may mutate a resource
// it owns, and an admin may mutate anything.
func (c *TokenClaims) CanMutate(ownerID uuid.UUID) bool {
	return c.UserID == ownerID || c.IsAdmin()
}
