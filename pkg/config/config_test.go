package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	cases := []struct {
		raw      string
		expected time.Duration
	}{
		{"3600s", time.Hour},
		{"30m", 30 * time.Minute},
		{"1h", time.Hour},
		{"2d", 48 * time.Hour},
	}

	for _, tc := range cases {
		d, err := ParseExpiry(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.expected, d, tc.raw)
	}
}

func TestParseExpiryRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "10", "-1h", "0s", "1w", "d"} {
		_, err := ParseExpiry(raw)
		assert.Error(t, err, raw)
	}
}

func TestLoadFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	err := Load()
	assert.Error(t, err)
}

func TestLoadFailsOnBadExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_EXPIRES_IN", "eventually")

	err := Load()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_EXPIRES_IN", "3600s")

	err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", AppConfig.JWT.Secret)
	assert.Equal(t, time.Hour, AppConfig.JWT.ExpiresIn)
}
