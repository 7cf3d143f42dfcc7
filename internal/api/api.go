package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinedelices/backend/internal/middleware"
	"github.com/cinedelices/backend/internal/service"
)

// Handlers bundles the API handlers for route registration.
type Handlers struct {
	Auth        *AuthHandler
	Recipe      *RecipeHandler
	Interaction *InteractionHandler
	User        *UserHandler
	Metadata    *MetadataHandler
	TMDB        *TMDBHandler
	LLM         *LLMHandler
	Admin       *AdminHandler
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "CineDelices API is running",
	})
}

// RegisterRoutes registers all API routes. Rate limiters are optional:
// without Redis the API runs unthrottled.
func RegisterRoutes(router *gin.Engine, h *Handlers, authService *service.AuthService, apiLimiter, authLimiter *middleware.RateLimiter) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	if apiLimiter != nil {
		v1.Use(apiLimiter.Middleware())
	}

	// Identity is populated on every request when a valid token is
	// present; anonymous requests pass through untouched.
	v1.Use(middleware.OptionalAuth(authService))

	h.Auth.RegisterRoutes(v1, authLimiter)
	h.Recipe.RegisterRoutes(v1)
	h.Interaction.RegisterRoutes(v1)
	h.User.RegisterRoutes(v1)
	h.Metadata.RegisterRoutes(v1)
	h.TMDB.RegisterRoutes(v1)
	h.LLM.RegisterRoutes(v1)
	h.Admin.RegisterRoutes(v1)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
}

// handleServiceError maps service errors to HTTP responses. Validation
// failures never reach here; they are caught at binding time.
func handleServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	case errors.Is(err, service.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
