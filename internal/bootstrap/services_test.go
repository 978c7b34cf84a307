package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarbonScan_Go/internal/config"
	"github.com/osse101/CarbonScan_Go/internal/product"
)

func TestNewProductResolver_MissingFallbackStillResolves(t *testing.T) {
	cfg := &config.Config{
		ProductAPIBaseURL:   "http://127.0.0.1:1",
		ProductAPITimeout:   time.Second,
		ProductCacheSize:    10,
		ProductCacheTTL:     time.Minute,
		ProductFallbackPath: filepath.Join(t.TempDir(), "missing.json"),
	}

	r := NewProductResolver(cfg)
	require.NotNil(t, r)
	_, ok := r.(*product.CachedResolver)
	assert.True(t, ok)
}

func TestStartBackground_RejectsBadCron(t *testing.T) {
	cfg := &config.Config{WorkerCount: 1, LeaderboardSnapshotCron: "not a cron"}

	bg, err := StartBackground(context.Background(), cfg, nil)

	assert.Error(t, err)
	assert.Nil(t, bg)
}
