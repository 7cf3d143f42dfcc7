package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/service"
	"github.com/cinedelices/backend/internal/testhelpers"
)

func setupInteractionTest(t *testing.T) (*gorm.DB, *service.InteractionService, *models.User, *models.Recipe) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewInteractionService(db)
	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "password123", models.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Big Kahuna Burger")
	return db, svc, user, recipe
}

func TestToggleFavorite(t *testing.T) {
	db, svc, user, recipe := setupInteractionTest(t)
	ctx := context.Background()

	favorited, err := svc.ToggleFavorite(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	favorited, err = svc.ToggleFavorite(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestToggleFavoriteUnknownRecipe(t *testing.T) {
	_, svc, user, _ := setupInteractionTest(t)

	_, err := svc.ToggleFavorite(context.Background(), user.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRateCreatesThenOverwrites(t *testing.T) {
	db, svc, user, recipe := setupInteractionTest(t)
	ctx := context.Background()

	result, err := svc.Rate(ctx, user.ID, recipe.ID, 4)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 4.0, result.AverageRating)

	result, err = svc.Rate(ctx, user.ID, recipe.ID, 5)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 5.0, result.AverageRating)

	// Re-rating overwrites, it never duplicates.
	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored models.Rating
	require.NoError(t, db.First(&stored, "user_id = ? AND recipe_id = ?", user.ID, recipe.ID).Error)
	assert.Equal(t, 5, stored.Stars)
}

func TestAverageRatingRounding(t *testing.T) {
	db, svc, user, recipe := setupInteractionTest(t)
	other := testhelpers.CreateTestUser(t, db, "critic", "critic@example.com", "password123", models.RoleUser)
	ctx := context.Background()

	_, err := svc.Rate(ctx, user.ID, recipe.ID, 5)
	require.NoError(t, err)
	result, err := svc.Rate(ctx, other.ID, recipe.ID, 4)
	require.NoError(t, err)

	// (5 + 4) / 2 = 4.5, rounded to one decimal.
	assert.Equal(t, 4.5, result.AverageRating)
}

func TestAverageRatingAfterOverwrite(t *testing.T) {
	db, svc, user, recipe := setupInteractionTest(t)
	other := testhelpers.CreateTestUser(t, db, "critic", "critic@example.com", "password123", models.RoleUser)
	ctx := context.Background()

	_, err := svc.Rate(ctx, user.ID, recipe.ID, 4)
	require.NoError(t, err)
	_, err = svc.Rate(ctx, user.ID, recipe.ID, 5)
	require.NoError(t, err)
	result, err := svc.Rate(ctx, other.ID, recipe.ID, 3)
	require.NoError(t, err)

	// The first user's overwritten 4 drops out: (5 + 3) / 2 = 4.0.
	assert.Equal(t, 4.0, result.AverageRating)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAverageRatingEmpty(t *testing.T) {
	_, svc, _, recipe := setupInteractionTest(t)

	avg, err := svc.AverageRating(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestRateUnknownRecipe(t *testing.T) {
	_, svc, user, _ := setupInteractionTest(t)

	_, err := svc.Rate(context.Background(), user.ID, uuid.New(), 3)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateReviewAllowsMultiple(t *testing.T) {
	db, svc, user, recipe := setupInteractionTest(t)
	ctx := context.Background()

	first, err := svc.CreateReview(ctx, user.ID, recipe.ID, "A tasty burger, would eat again.")
	require.NoError(t, err)
	assert.Equal(t, "chef", first.Author.Username)

	_, err = svc.CreateReview(ctx, user.ID, recipe.ID, "Still thinking about this burger.")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestListReviewsNewestFirst(t *testing.T) {
	db, svc, user, recipe := setupInteractionTest(t)
	ctx := context.Background()

	first, err := svc.CreateReview(ctx, user.ID, recipe.ID, "First impressions of the burger.")
	require.NoError(t, err)
	second, err := svc.CreateReview(ctx, user.ID, recipe.ID, "Second helping, even better now.")
	require.NoError(t, err)

	// Force distinct timestamps; SQLite keeps insertion granularity coarse.
	require.NoError(t, db.Model(&models.Review{}).Where("id = ?", second.ID).
		Update("created_at", first.CreatedAt.Add(time.Second)).Error)

	reviews, err := svc.ListReviews(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, "chef", reviews[0].Author.Username)
	assert.Equal(t, user.ID, reviews[0].Author.ID)
}

func TestListFavoritesIncludesRecipeAndAuthor(t *testing.T) {
	_, svc, user, recipe := setupInteractionTest(t)
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, user.ID, recipe.ID)
	require.NoError(t, err)

	favorites, err := svc.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	require.NotNil(t, favorites[0].Recipe)
	assert.Equal(t, recipe.ID, favorites[0].Recipe.ID)
	require.NotNil(t, favorites[0].Recipe.Author)
	assert.Equal(t, "chef", favorites[0].Recipe.Author.Username)
}
