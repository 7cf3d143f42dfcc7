package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinedelices/backend/internal/middleware"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/types"
)

type LLMHandler struct {
	llmService  *service.LLMService
	authService *service.AuthService
}

func NewLLMHandler(llmService *service.LLMService, authService *service.AuthService) *LLMHandler {
	return &LLMHandler{
		llmService:  llmService,
		authService: authService,
	}
}

func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	llm := router.Group("/llm")
	llm.Use(middleware.RequireAuth(h.authService))
	{
		llm.POST("/generate", h.GenerateRecipe)
	}
}

// GenerateRecipe produces a recipe draft inspired by the given movie or
// series. The draft is not persisted; the client submits it through the
// normal recipe creation flow.
func (h *LLMHandler) GenerateRecipe(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	recipe, err := h.llmService.GenerateRecipe(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}
