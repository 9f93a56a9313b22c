package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/models"
)

// ProfileService persists per-user biometric profiles and their derived
// daily rate. One row per user.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Upsert creates the profile on first submission, or overwrites the
// scalar fields wholesale on later ones. The consumed-day ledger is
// never touched here.
func (s *ProfileService) Upsert(ctx context.Context, userID string, input BiometricInput, dailyRate float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := findProfile(tx, userID)
		if errors.Is(err, ErrNotFound) {
			profile = &models.UserProfile{UserID: userID}
		} else if err != nil {
			return err
		}

		profile.Height = input.Height
		profile.Age = input.Age
		profile.CurrentWeight = input.CurrentWeight
		profile.DesiredWeight = input.DesiredWeight
		profile.BloodType = input.BloodType
		profile.DailyRate = dailyRate

		return tx.Save(profile).Error
	})
}

func (s *ProfileService) Find(ctx context.Context, userID string) (*models.UserProfile, error) {
	return findProfile(s.db.WithContext(ctx), userID)
}
