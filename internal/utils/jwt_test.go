package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "author@example.com", "admin", "Max", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "author@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "Max", claims.Name)
}

func TestJWTWrongSecretRejected(t *testing.T) {
	token, err := GenerateJWT(42, "author@example.com", "user", "Max", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpiredRejected(t *testing.T) {
	// A negative TTL produces an already-expired token
	token, err := GenerateJWT(42, "author@example.com", "user", "Max", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

func TestJWTMalformedRejected(t *testing.T) {
	_, err := ParseJWT("definitely.not.a.token", "secret")
	assert.Error(t, err)
}
