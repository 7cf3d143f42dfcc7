package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cinedelices/backend/internal/middleware"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/types"
)

// AdminHandler exposes the management surface. Every route requires an
// authenticated admin; the ownership rule is moot since admins pass it
// for any resource.
type AdminHandler struct {
	recipeService   *service.RecipeService
	userService     *service.UserService
	metadataService *service.MetadataService
	authService     *service.AuthService
}

func NewAdminHandler(recipeService *service.RecipeService, userService *service.UserService, metadataService *service.MetadataService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{
		recipeService:   recipeService,
		userService:     userService,
		metadataService: metadataService,
		authService:     authService,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(h.authService), middleware.RequireAdmin())
	{
		admin.GET("/recipes", h.ListRecipes)
		admin.PUT("/recipes/:id", h.UpdateRecipe)
		admin.DELETE("/recipes/:id", h.DeleteRecipe)

		admin.GET("/categories", h.ListCategories)
		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/media", h.ListMedia)
		admin.POST("/media", h.CreateMedia)
		admin.PUT("/media/:id", h.UpdateMedia)
		admin.DELETE("/media/:id", h.DeleteMedia)

		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/stats", h.GetStats)
	}
}

func (h *AdminHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *AdminHandler) UpdateRecipe(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe id"})
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), claims, id, &req)
	if err != nil {
		handleServiceError(c, err, "Recipe not found")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *AdminHandler) DeleteRecipe(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe id"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), claims, id); err != nil {
		handleServiceError(c, err, "Recipe not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.metadataService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Category name is required"}})
		return
	}

	category, err := h.metadataService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category id"})
		return
	}

	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	category, err := h.metadataService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category id"})
		return
	}

	if err := h.metadataService.DeleteCategory(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Category not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListMedia(c *gin.Context) {
	media, err := h.metadataService.ListMedia(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *AdminHandler) CreateMedia(c *gin.Context) {
	var req types.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	media, err := h.metadataService.CreateMedia(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "Media not found")
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *AdminHandler) UpdateMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid media id"})
		return
	}

	var req types.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	media, err := h.metadataService.UpdateMedia(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "Media not found")
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *AdminHandler) DeleteMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid media id"})
		return
	}

	if err := h.metadataService.DeleteMedia(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Media not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	var req types.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	user, err := h.userService.UpdateUserAsAdmin(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), claims, id); err != nil {
		handleServiceError(c, err, "User not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.metadataService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
