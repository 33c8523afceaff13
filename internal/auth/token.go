package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified content of a session token.
type Claims struct {
	UserID int64
	Email  string
}

// TokenManager issues and verifies signed session tokens. The signing secret
// comes from configuration; it is never hard-coded.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager with the given signing secret and
// token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate creates a signed token embedding the user's id and email.
func (m *TokenManager) Generate(userID int64, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   now.Add(m.ttl).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a token string, returning its claims.
// Expired, malformed, and wrongly signed tokens all fail.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	// JSON numbers decode as float64
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.New("invalid subject claim")
	}
	email, _ := claims["email"].(string)

	return &Claims{
		UserID: int64(sub),
		Email:  email,
	}, nil
}
