package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinedelices/backend/internal/middleware"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/types"
)

type MetadataHandler struct {
	metadataService *service.MetadataService
	authService     *service.AuthService
}

func NewMetadataHandler(metadataService *service.MetadataService, authService *service.AuthService) *MetadataHandler {
	return &MetadataHandler{
		metadataService: metadataService,
		authService:     authService,
	}
}

func (h *MetadataHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
	router.GET("/media", h.ListMedia)
	router.POST("/media", middleware.RequireAuth(h.authService), h.CreateMedia)
}

func (h *MetadataHandler) ListCategories(c *gin.Context) {
	categories, err := h.metadataService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *MetadataHandler) ListMedia(c *gin.Context) {
	media, err := h.metadataService.ListMedia(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MetadataHandler) CreateMedia(c *gin.Context) {
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
