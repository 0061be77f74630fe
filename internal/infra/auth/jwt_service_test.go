package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runclub/config"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = secret

	return cfg
}

func TestJWTService_IssueAndParse(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_jwt_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	before := time.Now()
	token, err := jwtService.Issue(42, "runner@example.com")
	after := time.Now()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "runner@example.com", claims.Email)

	// Expiry is exactly 7 days out, give or take processing time.
	require.NotNil(t, claims.ExpiresAt)
	assert.False(t, claims.ExpiresAt.Time.Before(before.Add(7*24*time.Hour).Truncate(time.Second)))
	assert.False(t, claims.ExpiresAt.Time.After(after.Add(7*24*time.Hour).Add(time.Second)))
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_jwt_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.Parse("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("secret_one_very_long_for_testing_purposes"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("secret_two_very_long_for_testing_purposes"))
	require.NoError(t, err)

	token, err := issuer.Issue(7, "runner@example.com")
	require.NoError(t, err)

	claims, err := verifier.Parse(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_jwt_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	// alg=none token must be rejected by the signing-method check.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 1,
		"email":   "runner@example.com",
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := jwtService.Parse(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
