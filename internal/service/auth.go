package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/config"
	"github.com/cinedelices/backend/internal/models"
	"github.com/cinedelices/backend/internal/types"
)

// AuthService issues and validates identity tokens and handles
// registration and login.
type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a user with a hashed password and returns the public
// projection plus a signed token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*types.PublicUser, string, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	}
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, "", ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent registration won the race. Re-check which
			// column collided so the caller blames the right field.
			var taken models.User
			if lookupErr := s.db.WithContext(ctx).Where("email = ?", email).First(&taken).Error; lookupErr == nil {
				return nil, "", ErrEmailTaken
			}
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return types.NewPublicUser(&user), token, nil
}

// Login verifies the credentials and returns the public projection plus
// a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*types.PublicUser, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return types.NewPublicUser(&user), token, nil
}

// GetUser loads the credential-free projection of a user together with
// their authored recipes.
func (s *AuthService) GetUser(ctx context.Context, claims *types.TokenClaims) (*types.PublicUser, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Preload("Recipes").First(&user, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return types.NewPublicUser(&user), nil
}

// GenerateToken signs a token embedding the user's identity, valid for
// 24 hours from issuance.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.TokenLifetime)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifies the signature and expiry of a token and
// reconstructs the identity it carries. Validity is purely a function of
// signature and expiry; there is no revocation list.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
