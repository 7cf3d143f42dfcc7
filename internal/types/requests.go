package types

import "github.com/google/uuid"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateRecipeRequest struct {
	Title        string     `json:"title" binding:"required,max=255"`
	Description  string     `json:"description"`
	Ingredients  string     `json:"ingredients" binding:"required"`
	Instructions string     `json:"instructions" binding:"required"`
	Anecdote     string     `json:"anecdote"`
	Difficulty   string     `json:"difficulty" binding:"omitempty,oneof=facile moyen difficile"`
	PrepTime     int        `json:"prep_time" binding:"omitempty,min=0"`
	CookTime     int        `json:"cook_time" binding:"omitempty,min=0"`
	ImageURL     string     `json:"image_url" binding:"omitempty,url"`
	CategoryID   *uuid.UUID `json:"category_id"`
	MediaID      *uuid.UUID `json:"media_id"`
}

type UpdateRecipeRequest struct {
	Title        *string    `json:"title" binding:"omitempty,max=255"`
	Description  *string    `json:"description"`
	Ingredients  *string    `json:"ingredients"`
	Instructions *string    `json:"instructions"`
	Anecdote     *string    `json:"anecdote"`
	Difficulty   *string    `json:"difficulty" binding:"omitempty,oneof=facile moyen difficile"`
	PrepTime     *int       `json:"prep_time" binding:"omitempty,min=0"`
	CookTime     *int       `json:"cook_time" binding:"omitempty,min=0"`
	ImageURL     *string    `json:"image_url" binding:"omitempty,url"`
	CategoryID   *uuid.UUID `json:"category_id"`
	MediaID      *uuid.UUID `json:"media_id"`
}

// RateRequest carries the rating score. The external field is named
// score; it is stored internally as stars.
type RateRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

type ReviewRequest struct {
	Content string `json:"content" binding:"required,min=10,max=2000"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=3,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}

// AdminUpdateUserRequest additionally allows role changes.
type AdminUpdateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=3,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role" binding:"omitempty,oneof=user admin"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type CreateMediaRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Type        string `json:"type" binding:"required,oneof=film serie"`
	PosterURL   string `json:"poster_url" binding:"omitempty,url"`
	ReleaseYear int    `json:"release_year" binding:"omitempty,min=1900,max=2100"`
	TMDBID      int64  `json:"tmdb_id"`
}

// GenerateRecipeRequest describes the media a recipe should be generated
// from.
type GenerateRecipeRequest struct {
	Title    string `json:"title" binding:"required"`
	Type     string `json:"type" binding:"omitempty,oneof=film serie"`
	Year     int    `json:"year"`
	Overview string `json:"overview"`
}
