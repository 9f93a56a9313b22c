package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/models"
)

const testUserID = "11111111-2222-3333-4444-555555555555"

func newLedgerWithProfile(t *testing.T) (*LedgerService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.UserProfile{UserID: testUserID}).Error)
	return NewLedgerService(db), db
}

func TestLedger_AddThenGetRoundTrip(t *testing.T) {
	ledger, _ := newLedgerWithProfile(t)
	ctx := context.Background()

	added, err := ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 2)
	require.NoError(t, err)
	assert.Equal(t, "Egg", added.Name)
	assert.Equal(t, 2.0, added.Amount)

	products, err := ledger.GetProducts(ctx, testUserID, "06-01-2024")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Egg", products[0].Name)
	assert.Equal(t, 2.0, products[0].Amount)
}

func TestLedger_DuplicateNamesStaySeparate(t *testing.T) {
	ledger, _ := newLedgerWithProfile(t)
	ctx := context.Background()

	_, err := ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 1)
	require.NoError(t, err)
	_, err = ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 3)
	require.NoError(t, err)

	products, err := ledger.GetProducts(ctx, testUserID, "06-01-2024")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1.0, products[0].Amount)
	assert.Equal(t, 3.0, products[1].Amount)
}

func TestLedger_RemoveDeletesFirstMatchOnly(t *testing.T) {
	ledger, _ := newLedgerWithProfile(t)
	ctx := context.Background()

	_, err := ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 1)
	require.NoError(t, err)
	_, err = ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 3)
	require.NoError(t, err)

	require.NoError(t, ledger.RemoveProduct(ctx, testUserID, "06-01-2024", "Egg"))

	products, err := ledger.GetProducts(ctx, testUserID, "06-01-2024")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 3.0, products[0].Amount, "the oldest line should be the one removed")
}

func TestLedger_RemoveIsCaseSensitive(t *testing.T) {
	ledger, _ := newLedgerWithProfile(t)
	ctx := context.Background()

	_, err := ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 1)
	require.NoError(t, err)

	err = ledger.RemoveProduct(ctx, testUserID, "06-01-2024", "egg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedger_RemoveMissLeavesLedgerUnchanged(t *testing.T) {
	ledger, _ := newLedgerWithProfile(t)
	ctx := context.Background()

	_, err := ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 2)
	require.NoError(t, err)

	err = ledger.RemoveProduct(ctx, testUserID, "06-01-2024", "Bread")
	assert.ErrorIs(t, err, ErrNotFound)

	err = ledger.RemoveProduct(ctx, testUserID, "06-02-2024", "Egg")
	assert.ErrorIs(t, err, ErrNotFound)

	products, err := ledger.GetProducts(ctx, testUserID, "06-01-2024")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestLedger_EmptiedDayIsPruned(t *testing.T) {
	ledger, db := newLedgerWithProfile(t)
	ctx := context.Background()

	_, err := ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 2)
	require.NoError(t, err)
	require.NoError(t, ledger.RemoveProduct(ctx, testUserID, "06-01-2024", "Egg"))

	_, err = ledger.GetProducts(ctx, testUserID, "06-01-2024")
	assert.ErrorIs(t, err, ErrNotFound)

	var days int64
	require.NoError(t, db.Model(&models.ConsumedDay{}).Count(&days).Error)
	assert.Zero(t, days, "the emptied day bucket should be deleted")

	// The date remains usable afterwards.
	_, err = ledger.AddProduct(ctx, testUserID, "06-01-2024", "Bread", 1)
	require.NoError(t, err)
}

func TestLedger_DatesAreIsolated(t *testing.T) {
	ledger, _ := newLedgerWithProfile(t)
	ctx := context.Background()

	_, err := ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 2)
	require.NoError(t, err)
	_, err = ledger.AddProduct(ctx, testUserID, "06-02-2024", "Bread", 1)
	require.NoError(t, err)

	products, err := ledger.GetProducts(ctx, testUserID, "06-01-2024")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Egg", products[0].Name)
}

func TestLedger_NoProfile(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	ctx := context.Background()

	_, err := ledger.AddProduct(ctx, testUserID, "06-01-2024", "Egg", 2)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ledger.GetProducts(ctx, testUserID, "06-01-2024")
	assert.ErrorIs(t, err, ErrNotFound)
}
