package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/testhelpers"
)

func TestGetUserProfileEndpoint(t *testing.T) {
	router, db, _ := setupAPITest(t)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	testhelpers.CreateTestRecipe(t, db, user.ID, "Ratatouille")

	w := doJSON(router, http.MethodGet, "/api/v1/users/"+user.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "chef", body["username"])
	assert.Nil(t, body["password_hash"])
	assert.Contains(t, w.Body.String(), "Ratatouille")
}

func TestListUsersAdminOnly(t *testing.T) {
	router, db, authService := setupAPITest(t)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	admin := testhelpers.CreateTestUser(t, db, "admin", "admin@example.com", "password123", models.RoleAdmin)

	w := doJSON(router, http.MethodGet, "/api/v1/users", tokenFor(t, authService, user), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/users", tokenFor(t, authService, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "chef@example.com")
}

func TestUpdateProfileOwnerOrAdmin(t *testing.T) {
	router, db, authService := setupAPITest(t)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	other := testhelpers.CreateTestUser(t, db, "other", "other@example.com", "password123", models.RoleUser)

	path := "/api/v1/users/" + user.ID.String()
	payload := map[string]string{"bio": "Cooking my way through cinema."}

	w := doJSON(router, http.MethodPut, path, tokenFor(t, authService, other), payload)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message": "Not authorized"}`, w.Body.String())

	w = doJSON(router, http.MethodPut, path, tokenFor(t, authService, user), payload)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Cooking my way through cinema.", body["bio"])
}

func TestDeleteAccountEndpoint(t *testing.T) {
	router, db, authService := setupAPITest(t)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)

	w := doJSON(router, http.MethodDelete, "/api/v1/users/"+user.ID.String(), tokenFor(t, authService, user), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/users/"+user.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
