package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/models"
)

// catalogRecord mirrors the upstream products.json layout, where
// groupBloodNotAllowed is a 5-element array with a null index 0.
type catalogRecord struct {
	Categories           string  `json:"categories"`
	Weight               float64 `json:"weight"`
	Title                string  `json:"title"`
	Calories             float64 `json:"calories"`
	GroupBloodNotAllowed []*bool `json:"groupBloodNotAllowed"`
}

// SeedProducts loads the product catalog into an empty products table.
// An already-populated table is left alone.
func SeedProducts(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	var records []catalogRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, models.Product{
			Categories:      rec.Categories,
			Weight:          rec.Weight,
			Title:           rec.Title,
			Calories:        rec.Calories,
			NotAllowedType1: flagAt(rec.GroupBloodNotAllowed, 1),
			NotAllowedType2: flagAt(rec.GroupBloodNotAllowed, 2),
			NotAllowedType3: flagAt(rec.GroupBloodNotAllowed, 3),
			NotAllowedType4: flagAt(rec.GroupBloodNotAllowed, 4),
		})
	}
	if len(products) == 0 {
		return nil
	}
	return db.Create(&products).Error
}

// flagAt tolerates short arrays and null entries; both mean "not
// restricted".
func flagAt(flags []*bool, i int) bool {
	if i >= len(flags) || flags[i] == nil {
		return false
	}
	return *flags[i]
}
