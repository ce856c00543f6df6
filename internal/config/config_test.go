package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/agrisynth/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, config.StoreMemory, cfg.Snapshots.Store)
	assert.Equal(t, 24*time.Hour, cfg.Snapshots.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Snapshots.CleanupInterval)
	assert.True(t, cfg.Generator.Clamp)
	assert.Equal(t, 30, cfg.Generator.Dataset.Farms)
	assert.Equal(t, 200000, cfg.Generator.MaxRecords)
	assert.Equal(t, "agrisynth:", cfg.Redis.KeyPrefix)
}

func TestFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9000
snapshots:
  store: redis
  ttl: 1h
generator:
  default_seed: 42
  dataset:
    users: 7
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("AGRISYNTH_SERVER__PORT", "9100")
	t.Setenv("AGRISYNTH_REDIS__HOST", "cache.internal")

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, config.StoreRedis, cfg.Snapshots.Store)
	assert.Equal(t, time.Hour, cfg.Snapshots.TTL)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, uint64(42), cfg.Generator.DefaultSeed)
	assert.Equal(t, 7, cfg.Generator.Dataset.Users)
	assert.Equal(t, 40, cfg.Generator.Dataset.Products)
}

func TestValidation(t *testing.T) {
	t.Setenv("AGRISYNTH_SNAPSHOTS__STORE", "disk")
	_, err := config.LoadFrom(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown snapshot store")
}

func TestValidationRejectsRecordLimit(t *testing.T) {
	t.Setenv("AGRISYNTH_GENERATOR__MAX_RECORDS", "0")
	_, err := config.LoadFrom(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator limits must be positive")
}
