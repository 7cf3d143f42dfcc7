package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "facile"
	DifficultyMedium = "moyen"
	DifficultyHard   = "difficile"
)

type Recipe struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Ingredients  string         `gorm:"type:text;not null" json:"ingredients"`
	Instructions string         `gorm:"type:text;not null" json:"instructions"`
	// Anecdote ties the dish back to its film or series.
	Anecdote   string     `gorm:"type:text" json:"anecdote"`
	Difficulty string     `gorm:"size:20;not null;default:'moyen'" json:"difficulty"`
	PrepTime   int        `json:"prep_time"`
	CookTime   int        `json:"cook_time"`
	ImageURL   string     `gorm:"size:500" json:"image_url"`
	UserID     uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CategoryID *uuid.UUID `gorm:"type:varchar(36);index" json:"category_id"`
	MediaID    *uuid.UUID `gorm:"type:varchar(36);index" json:"media_id"`

	Author   *User     `gorm:"foreignKey:UserID" json:"author,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Media    *Media    `gorm:"foreignKey:MediaID" json:"media,omitempty"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Difficulty == "" {
		r.Difficulty = DifficultyMedium
	}
	return nil
}

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
