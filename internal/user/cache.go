package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// CacheConfig sizes the profile cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default profile cache settings
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports profile cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedProfileEntry wraps a profile with version metadata for cache invalidation
type cachedProfileEntry struct {
	Version  string
	Profile  *domain.UserProfile
	CachedAt time.Time
}

// profileCache is an in-memory LRU of profiles with time-based expiration
// and version-based invalidation.
type profileCache struct {
	lru    *expirable.LRU[string, *cachedProfileEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newProfileCache(cfg CacheConfig) *profileCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &profileCache{
		lru: expirable.NewLRU[string, *cachedProfileEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached profile. Entries from an older schema
// version are dropped and reported as a miss.
func (c *profileCache) Get(userID string) (*domain.UserProfile, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	p := *entry.Profile
	p.Achievements = append([]domain.Achievement(nil), entry.Profile.Achievements...)
	return &p, true
}

func (c *profileCache) Set(userID string, profile *domain.UserProfile) {
	c.lru.Add(userID, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  profile,
		CachedAt: time.Now(),
	})
}

func (c *profileCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

func (c *profileCache) Clear() {
	c.lru.Purge()
}

func (c *profileCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
