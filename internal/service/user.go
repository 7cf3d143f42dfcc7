package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/types"
)

// UserService handles user profile operations. Update and delete apply
// the owner-or-admin rule.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetUser returns the public projection of a user with their recipes.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*types.PublicUser, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Preload("Recipes").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return types.NewPublicUser(&user), nil
}

// ListUsers returns the public projections of all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*types.PublicUser, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	result := make([]*types.PublicUser, len(users))
	for i := range users {
		result[i] = types.NewPublicUser(&users[i])
	}
	return result, nil
}

// UpdateUser updates a profile after the owner-or-admin check. A new
// password is re-hashed; role changes go through UpdateUserAsAdmin.
func (s *UserService) UpdateUser(ctx context.Context, claims *types.TokenClaims, id uuid.UUID, req *types.UpdateUserRequest) (*types.PublicUser, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !claims.CanMutate(user.ID) {
		return nil, ErrNotAuthorized
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return types.NewPublicUser(&user), nil
}

// UpdateUserAsAdmin applies admin edits, including role changes.
func (s *UserService) UpdateUserAsAdmin(ctx context.Context, id uuid.UUID, req *types.AdminUpdateUserRequest) (*types.PublicUser, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return types.NewPublicUser(&user), nil
}

// DeleteUser removes a user after the owner-or-admin check.
func (s *UserService) DeleteUser(ctx context.Context, claims *types.TokenClaims, id uuid.UUID) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !claims.CanMutate(user.ID) {
		return ErrNotAuthorized
	}

	return s.db.WithContext(ctx).Delete(&user).Error
}
