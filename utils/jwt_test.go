package utils

import (
	"testing"
	"time"

	"legato/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenUsesConfiguredSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "configured-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateSessionToken("uid-1", "client", time.Hour)
	require.NoError(t, err)

	uid, role, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	assert.Equal(t, "client", role)

	// Rotating the configured secret invalidates previously minted tokens.
	config.AppConfig.JWTSecret = "rotated-secret"
	_, _, err = ParseSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenDefaultSecretRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = ""

	token, err := GenerateSessionToken("uid-2", "lawyer", time.Hour)
	require.NoError(t, err)

	uid, role, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-2", uid)
	assert.Equal(t, "lawyer", role)
}
