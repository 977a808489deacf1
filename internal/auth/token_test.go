package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-jwt-secret-key-32-characters")

	signed, err := tokens.Generate("user-123")
	require.NoError(t, err)
	assert.Contains(t, signed, ".") // JWT has dots

	userID, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokenService("secret-one").Generate("user-123")
	require.NoError(t, err)

	_, err = NewTokenService("secret-two").Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret")

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "not-a-token"},
		{name: "truncated jwt", token: "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Parse(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-123",
		"iat":    time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp":    time.Now().Add(-24 * time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsMissingUserID(t *testing.T) {
	secret := "test-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Parse(signed)
	assert.Error(t, err)
}

func TestTokenCarriesSevenDayExpiry(t *testing.T) {
	secret := "test-secret"
	signed, err := NewTokenService(secret).Generate("user-123")
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(TokenTTL), exp.Time, time.Minute)
}
