package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/types"
)

// RecipeService handles recipe CRUD. Ownership is set at creation and
// immutable; update and delete apply the owner-or-admin rule.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe creates a recipe owned by the authenticated user.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Anecdote:     req.Anecdote,
		Difficulty:   req.Difficulty,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		ImageURL:     req.ImageURL,
		CategoryID:   req.CategoryID,
		MediaID:      req.MediaID,
		UserID:       userID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipe retrieves a recipe with its author, category and media.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Media").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes lists all recipes with their relations.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Media").
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe applies the requested changes after the owner-or-admin
// check. The owner itself is never updated.
func (s *RecipeService) UpdateRecipe(ctx context.Context, claims *types.TokenClaims, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !claims.CanMutate(recipe.UserID) {
		return nil, ErrNotAuthorized
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Ingredients != nil {
		updates["ingredients"] = *req.Ingredients
	}
	if req.Instructions != nil {
		updates["instructions"] = *req.Instructions
	}
	if req.Anecdote != nil {
		updates["anecdote"] = *req.Anecdote
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.PrepTime != nil {
		updates["prep_time"] = *req.PrepTime
	}
	if req.CookTime != nil {
		updates["cook_time"] = *req.CookTime
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.MediaID != nil {
		updates["media_id"] = *req.MediaID
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&recipe).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a recipe and cascades its ratings, reviews and
// favorites in one transaction.
func (s *RecipeService) DeleteRecipe(ctx context.Context, claims *types.TokenClaims, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !claims.CanMutate(recipe.UserID) {
		return ErrNotAuthorized
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}
