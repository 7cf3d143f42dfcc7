package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/internal/api"
	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/testhelpers"
)

// setupAPITest wires the full route table against an in-memory database.
// Rate limiters are off; TMDB and Mistral run unconfigured.
func setupAPITest(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)
	interactionService := service.NewInteractionService(db)
	userService := service.NewUserService(db)
	metadataService := service.NewMetadataService(db)

	handlers := &api.Handlers{
		Auth:        api.NewAuthHandler(authService),
		Recipe:      api.NewRecipeHandler(recipeService, authService),
		Interaction: api.NewInteractionHandler(interactionService, authService),
		User:        api.NewUserHandler(userService, authService),
		Metadata:    api.NewMetadataHandler(metadataService, authService),
		TMDB:        api.NewTMDBHandler(service.NewTMDBService("")),
		LLM:         api.NewLLMHandler(service.NewLLMService("", "", ""), authService),
		Admin:       api.NewAdminHandler(recipeService, userService, metadataService, authService),
	}

	router := gin.New()
	api.RegisterRoutes(router, handlers, authService, nil, nil)
	return router, db, authService
}

func tokenFor(t *testing.T, authService *service.AuthService, user *models.User) string {
	t.Helper()
	token, err := authService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
