package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/types"
)

// InteractionService applies favorite, rating and review mutations to
// recipes. It holds no locks of its own: the unique indexes on
// (user_id, recipe_id) are the serialization point for concurrent
// toggles and ratings.
type InteractionService struct {
	db *gorm.DB
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{db: db}
}

// RatingResult is the payload returned for both first ratings and
// overwrites; Created distinguishes the two for status signaling.
type RatingResult struct {
	*models.Rating
	Score         int     `json:"score"`
	AverageRating float64 `json:"averageRating"`
	Created       bool    `json:"-"`
}

// ReviewResult pairs a review with its author's public identity.
type ReviewResult struct {
	*models.Review
	Author types.Author `json:"author"`
}

// ToggleFavorite flips the favorite relation for (user, recipe): if a
// favorite exists it is removed, otherwise one is created. A concurrent
// duplicate create is reported by the store and treated as already
// favorited.
func (s *InteractionService) ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return false, err
	}

	var existing models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		if err := s.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against another toggle; the row exists.
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Rate upserts the user's rating for a recipe and recomputes the derived
// average. Re-rating overwrites the existing score; at most one rating
// row exists per (user, recipe).
func (s *InteractionService) Rate(ctx context.Context, userID, recipeID uuid.UUID, score int) (*RatingResult, error) {
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return nil, err
	}

	var rating models.Rating
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&rating).Error
		switch {
		case err == nil:
			return tx.Model(&rating).Update("stars", score).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating = models.Rating{UserID: userID, RecipeID: recipeID, Stars: score}
			if err := tx.Create(&rating).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Concurrent first rating by the same user: fall back
					// to updating the row that won.
					if err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&rating).Error; err != nil {
						return err
					}
					return tx.Model(&rating).Update("stars", score).Error
				}
				return err
			}
			created = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	avg, err := s.AverageRating(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return &RatingResult{
		Rating:        &rating,
		Score:         rating.Stars,
		AverageRating: avg,
		Created:       created,
	}, nil
}

// AverageRating computes the mean of all scores for a recipe, rounded to
// one decimal place. It is a best-effort snapshot: a momentarily stale
// value under concurrent writers is acceptable.
func (s *InteractionService) AverageRating(ctx context.Context, recipeID uuid.UUID) (float64, error) {
	var avg *float64
	err := s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("recipe_id = ?", recipeID).
		Select("AVG(stars)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return math.Round(*avg*10) / 10, nil
}

// CreateReview creates a review unconditionally; a user may review the
// same recipe any number of times.
func (s *InteractionService) CreateReview(ctx context.Context, userID, recipeID uuid.UUID, content string) (*ReviewResult, error) {
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return nil, err
	}

	review := models.Review{UserID: userID, RecipeID: recipeID, Content: content}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}

	var author models.User
	if err := s.db.WithContext(ctx).First(&author, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	return &ReviewResult{Review: &review, Author: types.NewAuthor(&author)}, nil
}

// ListReviews returns all reviews for a recipe, newest first, each with
// its author's id and username.
func (s *InteractionService) ListReviews(ctx context.Context, recipeID uuid.UUID) ([]ReviewResult, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	results := make([]ReviewResult, len(reviews))
	for i := range reviews {
		r := reviews[i]
		var author types.Author
		if r.Author != nil {
			author = types.NewAuthor(r.Author)
		}
		r.Author = nil
		results[i] = ReviewResult{Review: &r, Author: author}
	}
	return results, nil
}

// ListFavorites returns the user's favorites with each recipe and its
// author.
func (s *InteractionService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Author").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (s *InteractionService) recipeExists(ctx context.Context, recipeID uuid.UUID) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
