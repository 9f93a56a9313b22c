package models

import "gorm.io/gorm"

// UserProfile holds the biometric data and derived daily calorie rate for
// one account. Exactly one row per user; Upsert keys on UserID.
type UserProfile struct {
	gorm.Model
	UserID        string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Height        float64
	Age           int
	CurrentWeight float64
	DesiredWeight float64
	BloodType     int
	DailyRate     float64
	ConsumedDays  []ConsumedDay `gorm:"constraint:OnDelete:CASCADE"`
}

// ConsumedDay is the per-date bucket of consumed products. Date is the
// canonical zero-padded MM-DD-YYYY string; at most one row per profile+date.
type ConsumedDay struct {
	gorm.Model
	UserProfileID uint              `gorm:"uniqueIndex:idx_profile_date;not null"`
	Date          string            `gorm:"uniqueIndex:idx_profile_date;size:10;not null"`
	Products      []ConsumedProduct `gorm:"constraint:OnDelete:CASCADE"`
}

// ConsumedProduct is one consumed line. The same name may appear several
// times within a day; lines are not merged.
type ConsumedProduct struct {
	gorm.Model
	ConsumedDayID uint   `gorm:"index;not null"`
	Name          string `gorm:"not null"`
	Amount        float64
}
