package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"ACCOUNTS_ADDR", "SERVICE_URLS", "CARDS_SERVICE_NAME", "CARDS_HTTP_TIMEOUT", "LOG_LEVEL", "ENVIRONMENT", "DATABASE_URL", "REDIS_URL"} {
			t.Setenv(key, "")
		}

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "cards", cfg.Cards.ServiceName)
		assert.Equal(t, "myCards", cfg.Cards.Path)
		assert.Zero(t, cfg.Cards.HTTPTimeout)
		assert.Equal(t, DefaultServiceURLs, cfg.Discovery.ServiceURLs)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.Database.URL)
		assert.Empty(t, cfg.Redis.URL)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ACCOUNTS_ADDR", ":9090")
		t.Setenv("SERVICE_URLS", "cards=http://cards:9000")
		t.Setenv("CARDS_SERVICE_NAME", "cards-v2")
		t.Setenv("CARDS_HTTP_TIMEOUT", "3s")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("ENVIRONMENT", "prod")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "cards=http://cards:9000", cfg.Discovery.ServiceURLs)
		assert.Equal(t, "cards-v2", cfg.Cards.ServiceName)
		assert.Equal(t, 3*time.Second, cfg.Cards.HTTPTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "prod", cfg.Environment)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("CARDS_HTTP_TIMEOUT", "soon")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "CARDS_HTTP_TIMEOUT")
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Setenv("CARDS_HTTP_TIMEOUT", "-1s")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("invalid pool size", func(t *testing.T) {
		t.Setenv("CARDS_HTTP_TIMEOUT", "")
		t.Setenv("REDIS_POOL_SIZE", "many")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "REDIS_POOL_SIZE")
	})
}
