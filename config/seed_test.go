package config

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/models"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedProducts_LoadsCatalog(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, SeedProducts(db, "../data/products.json"))

	var products []models.Product
	require.NoError(t, db.Order("id").Find(&products).Error)
	require.NotEmpty(t, products)

	// Wheat bran is flagged for blood type 1 only.
	var bran models.Product
	require.NoError(t, db.Where("title = ?", "Wheat bran").First(&bran).Error)
	assert.True(t, bran.NotAllowedFor(1))
	assert.False(t, bran.NotAllowedFor(2))
	assert.False(t, bran.NotAllowedFor(0), "index 0 of the upstream array is unused")
}

func TestSeedProducts_SkipsPopulatedTable(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, db.Create(&models.Product{Title: "Existing"}).Error)
	require.NoError(t, SeedProducts(db, "../data/products.json"))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedProducts_MissingFile(t *testing.T) {
	db := newSeedTestDB(t)
	assert.Error(t, SeedProducts(db, "no-such-file.json"))
}
