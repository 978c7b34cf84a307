package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// cachedProductEntry wraps a lookup result with version metadata.
// A nil Product records a confirmed miss so unknown barcodes are not re-fetched until the TTL passes.
type cachedProductEntry struct {
	Version  string
	Product  *domain.Product
	CachedAt time.Time
}

// CachedResolver memoizes another resolver in an expirable LRU.
// Lookup failures are never cached.
type CachedResolver struct {
	next Resolver
	lru  *expirable.LRU[string, *cachedProductEntry]
}

// NewCachedResolver wraps next with a cache of the given size and TTL
func NewCachedResolver(next Resolver, size int, ttl time.Duration) *CachedResolver {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedResolver{
		next: next,
		lru:  expirable.NewLRU[string, *cachedProductEntry](size, nil, ttl),
	}
}

// Lookup serves from the cache when possible
func (c *CachedResolver) Lookup(ctx context.Context, barcode string) (*domain.Product, error) {
	if entry, ok := c.lru.Get(barcode); ok {
		if entry.Version != CacheSchemaVersion {
			c.lru.Remove(barcode)
		} else {
			logger.FromContext(ctx).Debug(LogMsgCacheHit, "barcode", barcode, "miss", entry.Product == nil)
			if entry.Product == nil {
				return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, barcode)
			}
			p := *entry.Product
			return &p, nil
		}
	}

	p, err := c.next.Lookup(ctx, barcode)
	switch {
	case err == nil:
		stored := *p
		c.lru.Add(barcode, &cachedProductEntry{Version: CacheSchemaVersion, Product: &stored, CachedAt: time.Now()})
	case errors.Is(err, domain.ErrProductNotFound):
		c.lru.Add(barcode, &cachedProductEntry{Version: CacheSchemaVersion, CachedAt: time.Now()})
	}
	return p, err
}

// Invalidate drops a barcode from the cache
func (c *CachedResolver) Invalidate(barcode string) {
	c.lru.Remove(barcode)
}

// Len returns the number of cached entries
func (c *CachedResolver) Len() int {
	return c.lru.Len()
}
