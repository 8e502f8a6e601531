package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "travelsim", cfg.Log.ServiceName)
	assert.True(t, cfg.Latency.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.Search().Min)
	assert.Equal(t, 2*time.Second, cfg.Latency.Search().Max)
	assert.Equal(t, time.Second, cfg.Latency.Verify().Max)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 30, cfg.RateLimit.Flights.Burst)
	assert.Equal(t, 5*time.Second, cfg.Trip.Timeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `
port: "9090"
random:
  seed: 42
latency:
  enabled: false
redis:
  ttl: 1m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(42), cfg.Random.Seed)
	assert.False(t, cfg.Latency.Search().Enabled())
	assert.False(t, cfg.Latency.Verify().Enabled())
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "redis", cfg.Redis.Host)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoad_InvalidLatency(t *testing.T) {
	t.Setenv("LATENCY_SEARCH_MIN", "3s")
	t.Setenv("LATENCY_SEARCH_MAX", "1s")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "latency.search_min")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: [unclosed"), 0o600))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "failed to read config")
}
