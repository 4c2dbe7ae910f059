package external

import (
	"weatherview.app/internal/config"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// NewCacheProvider creates a cache provider based on the configured cache type
func NewCacheProvider(cfg *config.CacheConfig, metrics ports.CacheMetrics) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProviderAdapter(metrics), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProviderAdapter(&cfg.Redis, metrics)
	default:
		return nil, errors.NewConfigurationError("unsupported cache type: "+cfg.Type.String(), nil)
	}
}
