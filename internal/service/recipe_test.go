package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/testhelpers"
	"github.com/cinedelices/backend/internal/types"
)

func claimsFor(u *models.User) *types.TokenClaims {
	return &types.TokenClaims{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func TestCreateAndGetRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewRecipeService(db)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	ctx := context.Background()

	recipe, err := svc.CreateRecipe(ctx, user.ID, &types.CreateRecipeRequest{
		Title:        "Ratatouille",
		Ingredients:  "- 2 zucchinis\n- 4 tomatoes",
		Instructions: "1. Slice.\n2. Bake.",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, recipe.UserID)
	assert.Equal(t, models.DifficultyMedium, recipe.Difficulty)

	loaded, err := svc.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Author)
	assert.Equal(t, "chef", loaded.Author.Username)
}

func TestUpdateRecipeOwnerOnly(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewRecipeService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner", "owner@example.com", "password123", models.RoleUser)
	other := testhelpers.CreateTestUser(t, db, "other", "other@example.com", "password123", models.RoleUser)
	admin := testhelpers.CreateTestUser(t, db, "admin", "admin@example.com", "password123", models.RoleAdmin)
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Cannoli")
	ctx := context.Background()

	title := "Sicilian Cannoli"
	_, err := svc.UpdateRecipe(ctx, claimsFor(other), recipe.ID, &types.UpdateRecipeRequest{Title: &title})
	assert.ErrorIs(t, err, service.ErrNotAuthorized)

	updated, err := svc.UpdateRecipe(ctx, claimsFor(owner), recipe.ID, &types.UpdateRecipeRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Sicilian Cannoli", updated.Title)

	// Admins can edit anyone's recipe; ownership does not move.
	title = "Cannoli Siciliani"
	updated, err = svc.UpdateRecipe(ctx, claimsFor(admin), recipe.ID, &types.UpdateRecipeRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Cannoli Siciliani", updated.Title)
	assert.Equal(t, owner.ID, updated.UserID)
}

func TestDeleteRecipeCascades(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db)
	interactionSvc := service.NewInteractionService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner", "owner@example.com", "password123", models.RoleUser)
	fan := testhelpers.CreateTestUser(t, db, "fan", "fan@example.com", "password123", models.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Timpano")
	ctx := context.Background()

	_, err := interactionSvc.ToggleFavorite(ctx, fan.ID, recipe.ID)
	require.NoError(t, err)
	_, err = interactionSvc.Rate(ctx, fan.ID, recipe.ID, 5)
	require.NoError(t, err)
	_, err = interactionSvc.CreateReview(ctx, fan.ID, recipe.ID, "The climax of the film, on a plate.")
	require.NoError(t, err)

	require.NoError(t, recipeSvc.DeleteRecipe(ctx, claimsFor(owner), recipe.ID))

	for _, model := range []interface{}{&models.Favorite{}, &models.Rating{}, &models.Review{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	}

	_, err = recipeSvc.GetRecipe(ctx, recipe.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteRecipeNonOwner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewRecipeService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner", "owner@example.com", "password123", models.RoleUser)
	other := testhelpers.CreateTestUser(t, db, "other", "other@example.com", "password123", models.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Dim Sum")

	err := svc.DeleteRecipe(context.Background(), claimsFor(other), recipe.ID)
	assert.ErrorIs(t, err, service.ErrNotAuthorized)

	_, err = svc.GetRecipe(context.Background(), recipe.ID)
	assert.NoError(t, err)
}

func TestListRecipesNewestFirst(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewRecipeService(db)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	testhelpers.CreateTestRecipe(t, db, user.ID, "First")
	testhelpers.CreateTestRecipe(t, db, user.ID, "Second")

	recipes, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}
