package external

import (
	"context"
	"sync"
	"time"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCacheProviderAdapter implements CacheProvider with an in-process
// map. Expiry is checked lazily on read, so Get never returns an expired
// entry; a background janitor reclaims memory for entries nobody reads.
type MemoryCacheProviderAdapter struct {
	data    map[string]cacheEntry
	mutex   sync.RWMutex
	metrics ports.CacheMetrics
	ticker  *time.Ticker
	stopCh  chan struct{}
}

// NewMemoryCacheProviderAdapter creates an in-memory cache provider
func NewMemoryCacheProviderAdapter(metrics ports.CacheMetrics) *MemoryCacheProviderAdapter {
	cache := &MemoryCacheProviderAdapter{
		data:    make(map[string]cacheEntry),
		metrics: metrics,
		ticker:  time.NewTicker(5 * time.Minute),
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup()
	return cache
}

// Get retrieves a value; expired entries are reported as misses
func (c *MemoryCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	entry, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		c.metrics.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.metrics.RecordHit()
	return entry.data, nil
}

// Set stores a value with TTL. A non-positive TTL is a validated input
// error; no entry is written.
func (c *MemoryCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheEntry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks whether an unexpired entry is present
func (c *MemoryCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	return true, nil
}

// Clear removes all entries
func (c *MemoryCacheProviderAdapter) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]cacheEntry)
	return nil
}

// Close stops the background janitor
func (c *MemoryCacheProviderAdapter) Close() error {
	close(c.stopCh)
	return nil
}

func (c *MemoryCacheProviderAdapter) cleanup() {
	for {
		select {
		case <-c.ticker.C:
			c.removeExpiredEntries()
		case <-c.stopCh:
			c.ticker.Stop()
			return
		}
	}
}

func (c *MemoryCacheProviderAdapter) removeExpiredEntries() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	for key, entry := range c.data {
		if now.After(entry.expiresAt) {
			delete(c.data, key)
		}
	}
}
