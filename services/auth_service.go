package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/models"
	"github.com/Githubuser289/Calories-BE/utils"
)

type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenMaker
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenMaker) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates an account. Returns ErrEmailInUse on a duplicate
// email.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	db := s.db.WithContext(ctx)

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailInUse
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks credentials, issues a bearer token and stores it on the
// user row so logout can revoke it.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	db := s.db.WithContext(ctx)

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrBadCredentials
	} else if err != nil {
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrBadCredentials
	}

	token, err := s.tokens.Generate(user.PublicID)
	if err != nil {
		return "", nil, err
	}

	user.Token = token
	if err := db.Save(&user).Error; err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Logout clears the stored token; the auth middleware will reject the
// old token from then on.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	result := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("public_id = ?", userID).
		Update("token", "")
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AuthService) FindByPublicID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("public_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}
