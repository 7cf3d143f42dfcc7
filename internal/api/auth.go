package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinedelices/backend/config"
	"github.com/cinedelices/backend/internal/middleware"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/types"
)

type AuthHandler struct {
	authService  *service.AuthService
	secureCookie bool
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: config.IsProduction(),
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, authLimiter *middleware.RateLimiter) {
	auth := router.Group("/auth")
	{
		if authLimiter != nil {
			auth.POST("/register", authLimiter.Middleware(), h.Register)
			auth.POST("/login", authLimiter.Middleware(), h.Login)
		} else {
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}
		auth.GET("/me", middleware.RequireAuth(h.authService), h.Me)
		auth.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me returns the authenticated user with their recipes.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), claims)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout clears the token cookie. The token itself stays valid until it
// expires; there is no revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(config.TokenLifetime.Seconds()), "/", "", h.secureCookie, true)
}
