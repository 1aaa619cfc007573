package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("SESSION_SECRET", "")
		t.Setenv("AUTH_ATTEMPTS_PER_MINUTE", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.AuthAttemptsPerMinute)
		assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.True(t, cfg.DashboardRequireLogin)
		assert.Equal(t, 120*time.Second, cfg.BackendTimeout)
		assert.Equal(t, int64(20<<20), cfg.UploadMaxBytes)
		assert.NotEmpty(t, cfg.SessionSecret)
	})

	t.Run("trailing slash is trimmed from the backend url", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.kanoon.test/")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://api.kanoon.test", cfg.APIBaseURL)
	})

	t.Run("production requires a session secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("SESSION_SECRET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SESSION_SECRET")
	})

	t.Run("invalid values are reported together", func(t *testing.T) {
		t.Setenv("DASHBOARD_REQUIRE_LOGIN", "sometimes")
		t.Setenv("BACKEND_TIMEOUT", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DASHBOARD_REQUIRE_LOGIN")
		assert.Contains(t, err.Error(), "BACKEND_TIMEOUT")
	})

	t.Run("auth attempts must be positive", func(t *testing.T) {
		t.Setenv("AUTH_ATTEMPTS_PER_MINUTE", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AUTH_ATTEMPTS_PER_MINUTE")
	})
}
