package auth

import (
	"testing"

	"trackify_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	config.AppConfig = cfg
}

func TestTokenRoundTrip(t *testing.T) {
	setupTokenConfig(t)

	token, err := GenerateToken("user-42", "worker", "City Maintenance")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "worker", claims.Role)
	assert.Equal(t, "City Maintenance", claims.Organization)
	assert.Equal(t, "trackify", claims.Issuer)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	setupTokenConfig(t)

	token, err := GenerateToken("user-42", "user", "")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	_, err = ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setupTokenConfig(t)
	token, err := GenerateToken("user-42", "admin", "")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "other-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
