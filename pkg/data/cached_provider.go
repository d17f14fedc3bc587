package data

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/apalladino/pac-sim/pkg/types"
)

// MemoryCache implements SeriesCache using in-memory storage.
type MemoryCache struct {
	cache map[string]*types.PriceSeries
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory series cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{cache: make(map[string]*types.PriceSeries)}
}

// Get retrieves a series from cache if available. Series are read-only after
// load, so the cached pointer is shared rather than copied.
func (c *MemoryCache) Get(key string) (*types.PriceSeries, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	series, exists := c.cache[key]
	return series, exists
}

// Set stores a series in the cache.
func (c *MemoryCache) Set(key string, series *types.PriceSeries) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache[key] = series
}

// Clear removes all cached series.
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache = make(map[string]*types.PriceSeries)
}

// Size returns the number of cached series.
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}

// CachedProvider wraps another Provider with caching, so a sweep over many
// durations fetches each asset's history once.
type CachedProvider struct {
	provider Provider
	cache    SeriesCache
}

// NewCachedProvider creates a cached provider backed by an in-memory cache.
func NewCachedProvider(provider Provider) *CachedProvider {
	return &CachedProvider{provider: provider, cache: NewMemoryCache()}
}

// NewCachedProviderWithCache creates a cached provider with a custom cache.
func NewCachedProviderWithCache(provider Provider, cache SeriesCache) *CachedProvider {
	return &CachedProvider{provider: provider, cache: cache}
}

// Name returns the name of the underlying provider with cache indication.
func (p *CachedProvider) Name() string {
	return "Cached " + p.provider.Name()
}

// Fetch loads a series through the cache.
func (p *CachedProvider) Fetch(assetID string, since time.Time) (*types.PriceSeries, error) {
	key := cacheKey(assetID, since)
	if cached, exists := p.cache.Get(key); exists {
		return cached, nil
	}

	log.Printf("🔄 Loading price history for %s via %s", assetID, p.provider.Name())
	series, err := p.provider.Fetch(assetID, since)
	if err != nil {
		log.Printf("❌ Failed to load %s: %v", assetID, err)
		return nil, err
	}

	p.cache.Set(key, series)

	log.Printf("✅ Loaded and cached %s (%d observations)", assetID, series.Len())
	return series, nil
}

// ClearCache clears all cached series.
func (p *CachedProvider) ClearCache() {
	p.cache.Clear()
}

func cacheKey(assetID string, since time.Time) string {
	return fmt.Sprintf("%s@%s", assetID, since.Format("2006-01-02"))
}
