package auth

import (
	"fmt"
	"time"

	apperrors "component-catalog-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates the bearer tokens gating every write
// operation. Token issuance normally happens in the external identity
// provider; the dev-user path exists for local development only.
type AuthService struct {
	config *AuthConfig
}

// AuthClaims are the JWT claims carried by catalog tokens
type AuthClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	return &AuthService{config: config}, nil
}

// GenerateJWT creates a signed token for the given principal
func (s *AuthService) GenerateJWT(username, email string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Lifetime())),
			Issuer:    "component-catalog-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT parses and validates a token string
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// AuthenticateDevUser checks the static dev-user list and issues a token.
// Returns an authentication error when the credentials match no entry.
func (s *AuthService) AuthenticateDevUser(username, password string) (string, error) {
	for _, u := range s.config.DevUsers {
		if u.Username == username && u.Password == password {
			return s.GenerateJWT(u.Username, u.Email)
		}
	}
	return "", apperrors.ErrUnknownUser
}
