package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	require.NoError(t, Init("test-secret", time.Hour))

	tokenString, err := GenerateJWT(42, "owner@example.com")
	require.NoError(t, err)

	token, err := VerifyJWT(tokenString)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "owner@example.com", claims["email"])
}

func TestVerifyJWT_Expired(t *testing.T) {
	require.NoError(t, Init("test-secret", -time.Minute))

	tokenString, err := GenerateJWT(42, "owner@example.com")
	require.NoError(t, err)

	_, err = VerifyJWT(tokenString)
	assert.Error(t, err)
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	require.NoError(t, Init("first-secret", time.Hour))
	tokenString, err := GenerateJWT(1, "a@b.c")
	require.NoError(t, err)

	require.NoError(t, Init("second-secret", time.Hour))
	_, err = VerifyJWT(tokenString)
	assert.Error(t, err)
}

func TestInit_EmptySecret(t *testing.T) {
	assert.Error(t, Init("", time.Hour))
}
