package config_test

import (
	"testing"
	"time"

	"github.com/rubayet36/jatri-ovijog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_APIKEY", "service-key")
	t.Setenv("JWT_SECRET", "signing-secret")
}

// TestLoad_Defaults verifies defaults: dev mode, port 8080 and the 24 hour
// token lifetime.
func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_MODE", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRATION_MILLIS", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppMode)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(86400000), cfg.JWT.ExpirationMillis)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration())
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

// TestLoad_RequiredValues verifies startup fails without the upstream
// credentials or signing secret.
func TestLoad_RequiredValues(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing supabase url", "SUPABASE_URL"},
		{"missing supabase key", "SUPABASE_APIKEY"},
		{"missing jwt secret", "JWT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

// TestLoad_InvalidValues verifies bad mode and expiry values are rejected.
func TestLoad_InvalidValues(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("APP_MODE", "staging")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("APP_MODE", "prod")
	t.Setenv("JWT_EXPIRATION_MILLIS", "one day")
	_, err = config.Load()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRATION_MILLIS", "-5")
	_, err = config.Load()
	assert.Error(t, err)
}

// TestLoad_ProdOrigins verifies CORS origins resolution in prod mode.
func TestLoad_ProdOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_MODE", "prod")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "https://jatriovijog.com", cfg.GetAllowedOrigins())

	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
	assert.Equal(t, "https://app.example.com", cfg.GetAllowedOrigins())
}
