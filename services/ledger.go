package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/models"
)

// LedgerService maintains the per-user, per-date record of consumed
// products. Every mutation runs inside one transaction and touches
// individual rows, so concurrent requests for the same user cannot
// clobber each other's writes.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// AddProduct appends a consumed line to the given date, creating the day
// bucket on first use. Duplicate names within a day stay as separate
// lines. The date must already be canonical (see utils.ParseLedgerDate).
// Returns ErrNotFound when the user has no profile yet.
func (s *LedgerService) AddProduct(ctx context.Context, userID, date, name string, amount float64) (*models.ConsumedProduct, error) {
	var added models.ConsumedProduct
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := findProfile(tx, userID)
		if err != nil {
			return err
		}

		var day models.ConsumedDay
		err = tx.Where("user_profile_id = ? AND date = ?", profile.ID, date).First(&day).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			day = models.ConsumedDay{UserProfileID: profile.ID, Date: date}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		added = models.ConsumedProduct{ConsumedDayID: day.ID, Name: name, Amount: amount}
		return tx.Create(&added).Error
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// RemoveProduct deletes the oldest line whose name matches exactly
// (case-sensitive). A day bucket left empty by the removal is deleted as
// well. Returns ErrNotFound when there is no profile, no bucket for the
// date, or no matching line; the ledger is left untouched in that case.
func (s *LedgerService) RemoveProduct(ctx context.Context, userID, date, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := findProfile(tx, userID)
		if err != nil {
			return err
		}

		var day models.ConsumedDay
		err = tx.Where("user_profile_id = ? AND date = ?", profile.ID, date).First(&day).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		var product models.ConsumedProduct
		err = tx.Where("consumed_day_id = ? AND name = ?", day.ID, name).
			Order("id").First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		// Hard deletes: a soft-deleted day row would collide with the
		// unique profile+date index when the date is used again.
		if err := tx.Unscoped().Delete(&product).Error; err != nil {
			return err
		}

		var remaining int64
		err = tx.Model(&models.ConsumedProduct{}).
			Where("consumed_day_id = ?", day.ID).Count(&remaining).Error
		if err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Unscoped().Delete(&day).Error
		}
		return nil
	})
}

// GetProducts lists the consumed lines for a date in insertion order.
// Returns ErrNotFound when no bucket exists for that date.
func (s *LedgerService) GetProducts(ctx context.Context, userID, date string) ([]models.ConsumedProduct, error) {
	db := s.db.WithContext(ctx)

	profile, err := findProfile(db, userID)
	if err != nil {
		return nil, err
	}

	var day models.ConsumedDay
	err = db.Where("user_profile_id = ? AND date = ?", profile.ID, date).First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	var products []models.ConsumedProduct
	err = db.Where("consumed_day_id = ?", day.ID).Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func findProfile(tx *gorm.DB, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := tx.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &profile, nil
}
