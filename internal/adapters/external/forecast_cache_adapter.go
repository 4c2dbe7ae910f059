package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// ForecastCacheAdapter bridges the generic byte-level CacheProvider to the
// forecast-specific ForecastCache port using JSON serialization.
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewForecastCacheAdapter creates a forecast cache on top of a generic
// cache provider
func NewForecastCacheAdapter(cacheProvider ports.CacheProvider) ports.ForecastCache {
	return &ForecastCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves a forecast record from cache
func (f *ForecastCacheAdapter) Get(ctx context.Context, key string) (*ports.ForecastData, error) {
	data, err := f.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var forecast ports.ForecastData
	if err := json.Unmarshal(data, &forecast); err != nil {
		return nil, errors.NewCacheError("deserialize cached forecast", err)
	}

	return &forecast, nil
}

// Set stores a forecast record in cache
func (f *ForecastCacheAdapter) Set(ctx context.Context, key string, forecast *ports.ForecastData, ttl time.Duration) error {
	if forecast == nil {
		return errors.NewValidationError("forecast data cannot be nil")
	}

	data, err := json.Marshal(forecast)
	if err != nil {
		return errors.NewCacheError("serialize forecast", err)
	}

	return f.cacheProvider.Set(ctx, key, data, ttl)
}
