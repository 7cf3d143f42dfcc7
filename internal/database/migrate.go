package database

import (
	"gorm.io/gorm"

	"github.com/cinedelices/backend/internal/models"
)

// Migrate applies the schema for all application models, including the
// unique indexes the interaction engine depends on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Media{},
		&models.Recipe{},
		&models.Favorite{},
		&models.Rating{},
		&models.Review{},
	)
}
