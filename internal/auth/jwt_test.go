package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthenticator_RoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "loc8r", "loc8r")

	token, err := a.GenerateToken("simon@example.com", "Simon", time.Hour)
	require.NoError(t, err)

	claims, err := a.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "simon@example.com", claims.Email)
	assert.Equal(t, "Simon", claims.Name)
}

func TestJWTAuthenticator_Rejects(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "loc8r", "loc8r")

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTAuthenticator("other-secret", "loc8r", "loc8r")
		token, err := other.GenerateToken("simon@example.com", "Simon", time.Hour)
		require.NoError(t, err)

		_, err = a.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := a.GenerateToken("simon@example.com", "Simon", -time.Minute)
		require.NoError(t, err)

		_, err = a.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := NewJWTAuthenticator("test-secret", "someone-else", "loc8r")
		token, err := other.GenerateToken("simon@example.com", "Simon", time.Hour)
		require.NoError(t, err)

		_, err = a.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("no email", func(t *testing.T) {
		token, err := a.GenerateToken("", "Simon", time.Hour)
		require.NoError(t, err)

		_, err = a.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrMissingEmail)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := a.ValidateAccessToken("not-a-jwt")
		assert.Error(t, err)
	})
}
