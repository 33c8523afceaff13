package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	token, err := tokens.Generate(42, "budi@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "budi@example.com", claims.Email)
}

func TestTokenManager_Validate_Expired(t *testing.T) {
	tokens := NewTokenManager("test-secret", -time.Minute)

	token, err := tokens.Generate(1, "budi@example.com")
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_Validate_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate(1, "budi@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_Validate_Malformed(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "Empty string",
			token: "",
		},
		{
			name:  "Garbage",
			token: "not.a.token",
		},
		{
			name:  "Truncated",
			token: "eyJhbGciOiJIUzI1NiJ9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Validate(tt.token)
			assert.Error(t, err)
		})
	}
}
