package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for byte-level caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// ForecastCache defines the contract for caching assembled forecast records
type ForecastCache interface {
	Get(ctx context.Context, key string) (*ForecastData, error)
	Set(ctx context.Context, key string, forecast *ForecastData, ttl time.Duration) error
}

// CacheStats represents cache performance counters
type CacheStats struct {
	Hits     int64
	Misses   int64
	TotalOps int64
	HitRatio float64
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	RecordHit()
	RecordMiss()
	GetStats() CacheStats
}
