package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789-0123456789"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user@example.com", "Test User", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", claims.Email())
	assert.Equal(t, "Test User", claims.FullName)
	assert.Equal(t, TokenAccess, claims.TokenType)
}

func TestRefreshTokenType(t *testing.T) {
	token, err := GenerateRefreshToken("user@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, TokenRefresh, claims.TokenType)
	assert.Empty(t, claims.FullName)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("user@example.com", "Test User", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	token, err := GenerateAccessToken("user@example.com", "Test User", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongSigningMethod(t *testing.T) {
	claims := &Claims{
		TokenType: TokenAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestRevocationKey(t *testing.T) {
	assert.Equal(t, "revoked:abc.def.ghi", RevocationKey("abc.def.ghi"))
}
