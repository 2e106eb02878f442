package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := LoadConfig()

	assert.Equal(t, ":3000", cfg.Server.Port)
	assert.Equal(t, "Geist Mono", cfg.Fonts.Family)
	assert.Equal(t, "latin", cfg.Fonts.Subset)
	assert.Equal(t, time.Minute, cfg.RateLimiter.Interval)
	assert.False(t, cfg.Cache.PageCacheEnabled, "page cache should default to disabled")
}

func TestLoadConfig_File(t *testing.T) {
	p := writeConfig(t, `server:
  port: ":8080"
cache:
  redis_host: "redis:6379"
  page_cache_enabled: true
  page_cache_ttl: 1h
rate_limiter:
  user_limit: 5
  interval: 30s
fonts:
  source_url: "http://fonts.internal/geist-mono"
`)
	t.Setenv("CONFIG_PATH", p)

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.True(t, cfg.Cache.PageCacheEnabled)
	assert.Equal(t, time.Hour, cfg.Cache.PageCacheTTL)
	assert.Equal(t, 5, cfg.RateLimiter.UserLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimiter.Interval)
	assert.Equal(t, "http://fonts.internal/geist-mono", cfg.Fonts.SourceURL)
	// Untouched keys keep their defaults.
	assert.Equal(t, "Geist Mono", cfg.Fonts.Family)
}

func TestLoadConfig_PanicsOnMalformedFile(t *testing.T) {
	p := writeConfig(t, "server: [not a map\n")
	t.Setenv("CONFIG_PATH", p)

	assert.Panics(t, func() { _ = LoadConfig() })
}

func TestGetConfig_ReturnsLoaded(t *testing.T) {
	p := writeConfig(t, `server:
  port: ":9999"
`)
	t.Setenv("CONFIG_PATH", p)

	LoadConfig()
	assert.Equal(t, ":9999", GetConfig().Server.Port)
}
