package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MediaTypeFilm  = "film"
	MediaTypeSerie = "serie"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// Media is the film or series a recipe is inspired by.
type Media struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	PosterURL   string    `gorm:"size:500" json:"poster_url"`
	ReleaseYear int       `json:"release_year"`
	TMDBID      int64     `gorm:"column:tmdb_id;index" json:"tmdb_id"`
}

func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (Media) TableName() string {
	return "media"
}
