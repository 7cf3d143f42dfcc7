package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cinedelices/backend/internal/service"
)

type TMDBHandler struct {
	tmdbService *service.TMDBService
}

func NewTMDBHandler(tmdbService *service.TMDBService) *TMDBHandler {
	return &TMDBHandler{tmdbService: tmdbService}
}

func (h *TMDBHandler) RegisterRoutes(router *gin.RouterGroup) {
	tmdb := router.Group("/tmdb")
	{
		tmdb.GET("/search", h.Search)
		tmdb.GET("/:id", h.GetDetails)
	}
}

// Search looks up movies or series: GET /tmdb/search?query=Ratatouille&type=movie
func (h *TMDBHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required and must be at least 2 characters"})
		return
	}

	mediaType := c.DefaultQuery("type", "movie")
	results, err := h.tmdbService.SearchMedia(c.Request.Context(), query, mediaType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetDetails returns one item including its IMDB id: GET /tmdb/:id?type=movie
func (h *TMDBHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid TMDB id"})
		return
	}

	mediaType := c.DefaultQuery("type", "movie")
	details, err := h.tmdbService.GetMediaDetails(c.Request.Context(), id, mediaType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, details)
}
