package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/agrisynth/internal/config"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/monitoring"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestServiceOptionsFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generator.DefaultSeed = 5
	cfg.Generator.Dataset.Orders = 12
	cfg.Snapshots.TTL = time.Hour
	cfg.Generator.MaxRecords = 500

	opts := serviceOptions(cfg)
	assert.Equal(t, uint64(5), opts.DefaultSeed)
	assert.Equal(t, 500, opts.MaxRecords)
	assert.Equal(t, 12, opts.Dataset.Orders)
	assert.Equal(t, cfg.Generator.Dataset.Farms, opts.Dataset.Farms)
	assert.Equal(t, time.Hour, opts.SnapshotTTL)
	assert.Equal(t, cfg.Snapshots.MaxSnapshots, opts.MaxSnapshots)
	assert.False(t, opts.ValidateOnRead)

	cfg.Snapshots.Store = config.StoreRedis
	assert.True(t, serviceOptions(cfg).ValidateOnRead)
}

func TestInitializeMemoryService(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generator.Dataset = config.DatasetSizes{Users: 4, Farms: 2, SensorDays: 1}

	svc, err := initializeService(cfg, monitoring.NewService(monitoring.Config{}))
	require.NoError(t, err)
	require.NoError(t, svc.Validate())

	ctx := context.Background()
	require.NoError(t, svc.Health(ctx))
	info, err := svc.CreateSnapshot(ctx, models.DatasetParams{})
	require.NoError(t, err)
	assert.Equal(t, 4, info.Counts["sensorReadings"])
	assert.False(t, info.ExpiresAt.IsZero())
}
