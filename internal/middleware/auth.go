package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cinedelices/backend/internal/types"
)

// ContextClaimsKey is where validated token claims live in the gin
// context.
const ContextClaimsKey = "claims"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// extractToken locates a token on the request: the Authorization header
// is checked first, then the token cookie set for browser sessions.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth validates the request's token and aborts with 401 when it
// is missing or invalid.
func RequireAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and
// silently proceeds otherwise. It never rejects a request: anonymous
// endpoints still need owner-specific state when a token happens to be
// valid.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := validator.ValidateToken(token); err == nil {
				c.Set(ContextClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the authenticated identity carries
// the admin role. It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok || !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims returns the validated claims attached by RequireAuth or
// OptionalAuth.
func GetClaims(c *gin.Context) (*types.TokenClaims, bool) {
	v, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*types.TokenClaims)
	return claims, ok
}
