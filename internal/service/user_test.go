package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/testhelpers"
	"github.com/cinedelices/backend/internal/types"
)

func TestUpdateUserProfile(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	ctx := context.Background()

	bio := "Cooking my way through cinema."
	updated, err := svc.UpdateUser(ctx, claimsFor(user), user.ID, &types.UpdateUserRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)

	newPassword := "betterpassword"
	_, err := svc.UpdateUser(context.Background(), claimsFor(user), user.ID, &types.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(newPassword)))
}

func TestUpdateUserForbiddenForOthers(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	other := testhelpers.CreateTestUser(t, db, "other", "other@example.com", "password123", models.RoleUser)

	bio := "not yours"
	_, err := svc.UpdateUser(context.Background(), claimsFor(other), user.ID, &types.UpdateUserRequest{Bio: &bio})
	assert.ErrorIs(t, err, service.ErrNotAuthorized)
}

func TestAdminCanChangeRole(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)

	role := models.RoleAdmin
	updated, err := svc.UpdateUserAsAdmin(context.Background(), user.ID, &types.AdminUpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestDeleteUserOwnerOrAdmin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	other := testhelpers.CreateTestUser(t, db, "other", "other@example.com", "password123", models.RoleUser)
	admin := testhelpers.CreateTestUser(t, db, "admin", "admin@example.com", "password123", models.RoleAdmin)
	ctx := context.Background()

	err := svc.DeleteUser(ctx, claimsFor(other), user.ID)
	assert.ErrorIs(t, err, service.ErrNotAuthorized)

	require.NoError(t, svc.DeleteUser(ctx, claimsFor(admin), user.ID))

	_, err = svc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
