package auth_test

import (
	"errors"
	"testing"

	"component-catalog-backend/internal/auth"
	apperrors "component-catalog-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func newTestAuthService(t *testing.T) *auth.AuthService {
	t.Helper()
	svc, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:     "test-secret",
		TokenLifetime: "1h",
		DevUsers: []auth.DevUser{
			{Username: "dana", Email: "dana.fisher@example.com", Password: "local-only"},
		},
	})
	assert.NoError(t, err)
	return svc
}

// TestGenerateAndValidateJWT tests the token roundtrip
func TestGenerateAndValidateJWT(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.GenerateJWT("dana", "dana.fisher@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "dana", claims.Username)
	assert.Equal(t, "dana.fisher@example.com", claims.Email)
	assert.Equal(t, "component-catalog-backend", claims.Issuer)
}

// TestValidateJWT_WrongSecret tests that tokens signed with another secret are rejected
func TestValidateJWT_WrongSecret(t *testing.T) {
	svc := newTestAuthService(t)
	other, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: "other-secret", TokenLifetime: "1h"})
	assert.NoError(t, err)

	token, err := other.GenerateJWT("dana", "dana.fisher@example.com")
	assert.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}

// TestValidateJWT_Expired tests that expired tokens are rejected
func TestValidateJWT_Expired(t *testing.T) {
	expired, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: "test-secret", TokenLifetime: "-1h"})
	assert.NoError(t, err)

	token, err := expired.GenerateJWT("dana", "dana.fisher@example.com")
	assert.NoError(t, err)

	claims, err := expired.ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}

// TestValidateJWT_Garbage tests that non-JWT strings are rejected
func TestValidateJWT_Garbage(t *testing.T) {
	svc := newTestAuthService(t)

	claims, err := svc.ValidateJWT("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// TestAuthenticateDevUser tests the static dev-user login path
func TestAuthenticateDevUser(t *testing.T) {
	svc := newTestAuthService(t)

	t.Run("ValidCredentials", func(t *testing.T) {
		token, err := svc.AuthenticateDevUser("dana", "local-only")
		assert.NoError(t, err)

		claims, err := svc.ValidateJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "dana", claims.Username)
		assert.Equal(t, "dana.fisher@example.com", claims.Email)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		token, err := svc.AuthenticateDevUser("dana", "wrong")
		assert.Error(t, err)
		assert.Empty(t, token)
		assert.True(t, errors.Is(err, apperrors.ErrUnknownUser))
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		token, err := svc.AuthenticateDevUser("nobody", "local-only")
		assert.Error(t, err)
		assert.Empty(t, token)
		assert.True(t, errors.Is(err, apperrors.ErrUnknownUser))
	})
}

// TestNewAuthService_NilConfig tests that a nil config is rejected
func TestNewAuthService_NilConfig(t *testing.T) {
	svc, err := auth.NewAuthService(nil)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
