package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMaker_RoundTrip(t *testing.T) {
	maker := NewTokenMaker("test-secret", time.Hour)

	token, err := maker.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestTokenMaker_WrongSecret(t *testing.T) {
	maker := NewTokenMaker("test-secret", time.Hour)
	other := NewTokenMaker("other-secret", time.Hour)

	token, err := maker.Generate("user-123")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMaker_Expired(t *testing.T) {
	maker := NewTokenMaker("test-secret", -time.Minute)

	token, err := maker.Generate("user-123")
	require.NoError(t, err)

	_, err = maker.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMaker_Garbage(t *testing.T) {
	maker := NewTokenMaker("test-secret", time.Hour)

	_, err := maker.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
