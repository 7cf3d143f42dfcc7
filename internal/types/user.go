package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/cinedelices/backend/internal/models"
)

// PublicUser is the credential-free projection of a user returned by the
// API. It is produced at the persistence boundary so that password hashes
// never travel through application code.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`

	Recipes []models.Recipe `json:"recipes,omitempty"`
}

// Author is the minimal identity attached to recipes, reviews and
// favorites: id and display name only.
type Author struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// NewPublicUser projects a stored user into its public shape.
func NewPublicUser(u *models.User) *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		Recipes:   u.Recipes,
	}
}

// NewAuthor projects a stored user into the author shape.
func NewAuthor(u *models.User) Author {
	return Author{ID: u.ID, Username: u.Username}
}
