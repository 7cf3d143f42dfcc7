package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/testhelpers"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router, db, authService := setupAPITest(t)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)

	w := doJSON(router, http.MethodGet, "/api/v1/admin/stats", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/admin/stats", tokenFor(t, authService, user), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message": "Admin access required"}`, w.Body.String())
}

func TestAdminStats(t *testing.T) {
	router, db, authService := setupAPITest(t)
	admin := testhelpers.CreateTestUser(t, db, "admin", "admin@example.com", "password123", models.RoleAdmin)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	testhelpers.CreateTestRecipe(t, db, user.ID, "Ratatouille")

	w := doJSON(router, http.MethodGet, "/api/v1/admin/stats", tokenFor(t, authService, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["recipes"])
	assert.Equal(t, float64(2), body["users"])
}

func TestAdminDeletesAnyRecipe(t *testing.T) {
	router, db, authService := setupAPITest(t)
	admin := testhelpers.CreateTestUser(t, db, "admin", "admin@example.com", "password123", models.RoleAdmin)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Cannoli")

	w := doJSON(router, http.MethodDelete, "/api/v1/admin/recipes/"+recipe.ID.String(), tokenFor(t, authService, admin), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCategoryLifecycle(t *testing.T) {
	router, db, authService := setupAPITest(t)
	admin := testhelpers.CreateTestUser(t, db, "admin", "admin@example.com", "password123", models.RoleAdmin)
	token := tokenFor(t, authService, admin)

	w := doJSON(router, http.MethodPost, "/api/v1/admin/categories", token, map[string]string{
		"name":        "Dessert",
		"description": "Sweet treats to end the meal",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	id := created["id"].(string)

	w = doJSON(router, http.MethodPut, "/api/v1/admin/categories/"+id, token, map[string]string{
		"name":        "Desserts",
		"description": "Sweet treats",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/admin/categories/"+id, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/admin/categories/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminChangesUserRole(t *testing.T) {
	router, db, authService := setupAPITest(t)
	admin := testhelpers.CreateTestUser(t, db, "admin", "admin@example.com", "password123", models.RoleAdmin)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)

	w := doJSON(router, http.MethodPut, "/api/v1/admin/users/"+user.ID.String(), tokenFor(t, authService, admin), map[string]string{
		"role": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "admin", body["role"])
}
