package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes a variable for the duration of the test. t.Setenv alone is
// not enough: envconfig only applies defaults when the key is absent, not when
// it is present but empty.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "APP_ENV")
	unsetenv(t, "APP_SECRET")
	unsetenv(t, "PORT")
	unsetenv(t, "TOKEN_TTL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, DevFallbackSecret, cfg.AppSecret)
	assert.True(t, cfg.SecretFallback, "fallback secret must be flagged, not silent")
}

func TestLoad_ExplicitSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.AppSecret)
	assert.False(t, cfg.SecretFallback)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	unsetenv(t, "APP_SECRET")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_SECRET", "prod-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.SecretFallback)
}
