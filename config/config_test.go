package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray config.yaml is read.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		isolate(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSOrigins)
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.True(t, cfg.Server.EnableIdempotency)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 0.02, cfg.Engine.NearThreshold)
		assert.Equal(t, 0.05, cfg.Engine.AddressNearThreshold)
		assert.Equal(t, 500.0, cfg.Engine.FraudThresholdKg)
		assert.Equal(t, 5, cfg.Engine.LargeBasketThreshold)
		assert.Equal(t, 0.95, cfg.Engine.FluctuationMin)
		assert.Equal(t, 1.05, cfg.Engine.FluctuationMax)
		assert.Empty(t, cfg.Catalog.Path)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("BLINKLEAN_SERVER_PORT", "9090")
		t.Setenv("BLINKLEAN_SERVER_RATE_LIMIT", "50")
		t.Setenv("BLINKLEAN_SERVER_RATE_WINDOW", "30s")
		t.Setenv("BLINKLEAN_SERVER_CORS_ORIGINS", "https://blinklean.in,https://admin.blinklean.in")
		t.Setenv("BLINKLEAN_CACHE_SIZE", "0")
		t.Setenv("BLINKLEAN_ENGINE_NEAR_THRESHOLD", "0.03")
		t.Setenv("BLINKLEAN_CATALOG_PATH", "/etc/blinklean/catalog.yaml")
		t.Setenv("BLINKLEAN_LOG_PRETTY", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, []string{"https://blinklean.in", "https://admin.blinklean.in"}, cfg.Server.CORSOrigins)
		assert.Equal(t, 0, cfg.Cache.Size)
		assert.Equal(t, 0.03, cfg.Engine.NearThreshold)
		assert.Equal(t, "/etc/blinklean/catalog.yaml", cfg.Catalog.Path)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("bare PORT is honoured", func(t *testing.T) {
		isolate(t)
		t.Setenv("PORT", "7070")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
	})

	t.Run("reads config.yaml from the working directory", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
			"server:\n  port: \"8181\"\nengine:\n  fraud_threshold_kg: 750\nlog:\n  level: debug\n"), 0o600))

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8181", cfg.Server.Port)
		assert.Equal(t, 750.0, cfg.Engine.FraudThresholdKg)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 100, cfg.Server.RateLimit)
	})

	t.Run("environment beats file", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: \"8181\"\n"), 0o600))
		t.Setenv("BLINKLEAN_SERVER_PORT", "9191")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9191", cfg.Server.Port)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "blinklean.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cache:\n  ttl: 1m\n"), 0o600))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, time.Minute, cfg.Cache.TTL)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		isolate(t)

		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unclosed\n"), 0o600))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) Config {
		t.Helper()
		isolate(t)
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"negative rate limit", func(c *Config) { c.Server.RateLimit = -1 }},
		{"zero near threshold", func(c *Config) { c.Engine.NearThreshold = 0 }},
		{"inverted fluctuation range", func(c *Config) { c.Engine.FluctuationMin, c.Engine.FluctuationMax = 1.1, 0.9 }},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid(t)
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	t.Run("invalid environment value fails load", func(t *testing.T) {
		isolate(t)
		t.Setenv("BLINKLEAN_ENGINE_FLUCTUATION_MAX", "0.5")

		_, err := Load()
		assert.Error(t, err)
	})
}
