package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	token, err := tokens.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestGenerateRequiresUserID(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	_, err := tokens.Generate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", -time.Minute)

	token, err := tokens.Generate("user-123")
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tokens.Generate("user-123")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsEmptyToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	_, err := tokens.Validate("  ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestTokenFromHeader(t *testing.T) {
	token, err := TokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = TokenFromHeader("bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = TokenFromHeader("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = TokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = TokenFromHeader("Bearer")
	assert.ErrorIs(t, err, ErrMissingToken)
}
