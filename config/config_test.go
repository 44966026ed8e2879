package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientDefaults(t *testing.T) {
	cfg, err := ParseClient()
	require.NoError(t, err)

	assert.Empty(t, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
}

func TestParseClientFromEnvironment(t *testing.T) {
	t.Setenv("SMARTSAAS_BASE_URL", "https://api.smartsaas.app")
	t.Setenv("SMARTSAAS_TIMEOUT", "5s")
	t.Setenv("SMARTSAAS_TOKEN_FILE", "/tmp/token.json")
	t.Setenv("SMARTSAAS_LOG_LEVEL", "debug")

	cfg, err := ParseClient()
	require.NoError(t, err)

	assert.Equal(t, "https://api.smartsaas.app", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/token.json", cfg.TokenFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseClientRejectsBadTimeout(t *testing.T) {
	t.Setenv("SMARTSAAS_TIMEOUT", "not-a-duration")

	_, err := ParseClient()
	assert.Error(t, err)
}

func TestParseStubDefaults(t *testing.T) {
	cfg, err := ParseStub()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "smartsaas-dev-secret", cfg.JWTSecret)
}

func TestParseStubFromEnvironment(t *testing.T) {
	t.Setenv("STUB_ADDR", ":9999")
	t.Setenv("STUB_JWT_SECRET", "prod-secret")

	cfg, err := ParseStub()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
}
