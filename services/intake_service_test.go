package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/models"
)

func newIntakeService(t *testing.T) (*IntakeService, *ProfileService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Product{Title: "Bread", NotAllowedType1: true}).Error)
	require.NoError(t, db.Create(&models.Product{Title: "Egg"}).Error)

	profiles := NewProfileService(db)
	return NewIntakeService(NewProductService(db), profiles), profiles, db
}

func TestIntakePreview(t *testing.T) {
	intake, _, _ := newIntakeService(t)
	ctx := context.Background()

	input := BiometricInput{Height: 170, Age: 25, CurrentWeight: 70, DesiredWeight: 65, BloodType: 1}
	result, err := intake.Preview(ctx, input)
	require.NoError(t, err)

	assert.InDelta(t, ComputeDailyTarget(input), result.DailyCalIntake, 1e-9)
	assert.Equal(t, []string{"Bread"}, result.FoodNotRcmnded)

	input.BloodType = 2
	result, err = intake.Preview(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, result.FoodNotRcmnded)
}

func TestIntakePreview_DoesNotPersist(t *testing.T) {
	intake, profiles, _ := newIntakeService(t)
	ctx := context.Background()

	input := BiometricInput{Height: 170, Age: 25, CurrentWeight: 70, DesiredWeight: 65, BloodType: 1}
	_, err := intake.Preview(ctx, input)
	require.NoError(t, err)

	_, err = profiles.Find(ctx, testUserID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIntakeCommit_UpsertsProfile(t *testing.T) {
	intake, profiles, _ := newIntakeService(t)
	ctx := context.Background()

	input := BiometricInput{Height: 170, Age: 25, CurrentWeight: 70, DesiredWeight: 65, BloodType: 1}
	result, err := intake.Commit(ctx, testUserID, input)
	require.NoError(t, err)

	profile, err := profiles.Find(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, result.DailyCalIntake, profile.DailyRate)
	assert.Equal(t, 170.0, profile.Height)
}
