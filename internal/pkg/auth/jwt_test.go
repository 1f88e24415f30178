package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agms/agms-backend/internal/app/models"
)

func testJWTService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: expiry,
		TokenIssuer:    "agms.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "advisor@iyte.edu.tr",
		RoleType: models.RoleAdvisor,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	service := testJWTService(time.Hour)

	token, expiresIn, err := service.GenerateAccessToken(testUser())
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "advisor@iyte.edu.tr", claims.Email)
	assert.Equal(t, string(models.RoleAdvisor), claims.RoleType)
	assert.Equal(t, "agms.test", claims.Issuer)
}

func TestExpiredTokenRejected(t *testing.T) {
	service := testJWTService(-time.Minute)

	token, _, err := service.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = service.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateAccessToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsRejectsEmptyToken(t *testing.T) {
	_, err := testJWTService(time.Hour).ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
