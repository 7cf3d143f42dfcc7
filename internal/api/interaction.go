package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cinedelices/backend/internal/middleware"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/types"
)

type InteractionHandler struct {
	interactionService *service.InteractionService
	authService        *service.AuthService
}

func NewInteractionHandler(interactionService *service.InteractionService, authService *service.AuthService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		authService:        authService,
	}
}

func (h *InteractionHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/:id/favorite", middleware.RequireAuth(h.authService), h.ToggleFavorite)
		recipes.POST("/:id/rate", middleware.RequireAuth(h.authService), h.RateRecipe)
		recipes.GET("/:id/reviews", h.ListReviews)
		recipes.POST("/:id/reviews", middleware.RequireAuth(h.authService), h.CreateReview)
	}

	router.GET("/users/me/favorites", middleware.RequireAuth(h.authService), h.ListFavorites)
}

// ToggleFavorite flips the favorite relation: 201 when added, 200 when
// removed.
func (h *InteractionHandler) ToggleFavorite(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe id"})
		return
	}

	favorited, err := h.interactionService.ToggleFavorite(c.Request.Context(), claims.UserID, recipeID)
	if err != nil {
		handleServiceError(c, err, "Recipe not found")
		return
	}

	if favorited {
		c.JSON(http.StatusCreated, gin.H{"favorited": true, "message": "Added to favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": false, "message": "Removed from favorites"})
}

// RateRecipe upserts the caller's rating: 201 for a first rating, 200
// for an overwrite. The payload shape is the same either way.
func (h *InteractionHandler) RateRecipe(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe id"})
		return
	}

	var req types.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Score must be between 1 and 5"}})
		return
	}

	result, err := h.interactionService.Rate(c.Request.Context(), claims.UserID, recipeID, req.Score)
	if err != nil {
		handleServiceError(c, err, "Recipe not found")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (h *InteractionHandler) CreateReview(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe id"})
		return
	}

	var req types.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Review content is required"}})
		return
	}

	review, err := h.interactionService.CreateReview(c.Request.Context(), claims.UserID, recipeID, req.Content)
	if err != nil {
		handleServiceError(c, err, "Recipe not found")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListReviews returns a recipe's reviews, newest first. Anonymous.
func (h *InteractionHandler) ListReviews(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe id"})
		return
	}

	reviews, err := h.interactionService.ListReviews(c.Request.Context(), recipeID)
	if err != nil {
		handleServiceError(c, err, "Recipe not found")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *InteractionHandler) ListFavorites(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	favorites, err := h.interactionService.ListFavorites(c.Request.Context(), claims.UserID)
	if err != nil {
		handleServiceError(c, err, "Recipe not found")
		return
	}
	c.JSON(http.StatusOK, favorites)
}
