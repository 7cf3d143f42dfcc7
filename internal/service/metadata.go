package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/types"
)

// MetadataService handles categories and the film/series catalog.
type MetadataService struct {
	db *gorm.DB
}

func NewMetadataService(db *gorm.DB) *MetadataService {
	return &MetadataService{db: db}
}

func (s *MetadataService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *MetadataService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error) {
	category := models.Category{Name: req.Name, Description: req.Description}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *MetadataService) UpdateCategory(ctx context.Context, id uuid.UUID, req *types.CreateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	updates := map[string]interface{}{"name": req.Name, "description": req.Description}
	if err := s.db.WithContext(ctx).Model(&category).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *MetadataService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MetadataService) ListMedia(ctx context.Context) ([]models.Media, error) {
	var media []models.Media
	if err := s.db.WithContext(ctx).Order("title").Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MetadataService) CreateMedia(ctx context.Context, req *types.CreateMediaRequest) (*models.Media, error) {
	media := models.Media{
		Title:       req.Title,
		Type:        req.Type,
		PosterURL:   req.PosterURL,
		ReleaseYear: req.ReleaseYear,
		TMDBID:      req.TMDBID,
	}
	if err := s.db.WithContext(ctx).Create(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (s *MetadataService) UpdateMedia(ctx context.Context, id uuid.UUID, req *types.CreateMediaRequest) (*models.Media, error) {
	var media models.Media
	if err := s.db.WithContext(ctx).First(&media, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	updates := map[string]interface{}{
		"title":        req.Title,
		"type":         req.Type,
		"poster_url":   req.PosterURL,
		"release_year": req.ReleaseYear,
		"tmdb_id":      req.TMDBID,
	}
	if err := s.db.WithContext(ctx).Model(&media).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (s *MetadataService) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Media{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats holds the admin dashboard counters.
type Stats struct {
	Recipes    int64 `json:"recipes"`
	Users      int64 `json:"users"`
	Categories int64 `json:"categories"`
	Media      int64 `json:"media"`
}

// GetStats counts the main entities for the admin dashboard.
func (s *MetadataService) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Count(&stats.Recipes).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&stats.Categories).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Media{}).Count(&stats.Media).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
