package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// UseCase orchestrates forecast retrieval: cache-aside read, fallback to
// resolve+fetch on miss, write-through on success. Concurrent misses for
// the same city are coalesced into a single upstream cycle.
type UseCase struct {
	geocoder ports.GeocodingProvider
	fetcher  ports.ForecastProvider
	cache    ports.ForecastCache

	enableCache bool
	cacheTTL    time.Duration
	inflight    singleflight.Group
}

type UseCaseDependencies struct {
	Geocoder ports.GeocodingProvider
	Fetcher  ports.ForecastProvider
	Cache    ports.ForecastCache

	EnableCache bool
	CacheTTL    time.Duration
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoding provider is required")
	}
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.EnableCache && deps.CacheTTL <= 0 {
		return nil, errors.NewValidationError("cache TTL must be positive when cache is enabled")
	}

	return &UseCase{
		geocoder:    deps.Geocoder,
		fetcher:     deps.Fetcher,
		cache:       deps.Cache,
		enableCache: deps.EnableCache,
		cacheTTL:    deps.CacheTTL,
	}, nil
}

// GetForecast returns the forecast record for the requested city. The city
// string is used verbatim for resolution and as the cache key suffix.
func (uc *UseCase) GetForecast(ctx context.Context, request ForecastRequest) (*Forecast, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid forecast request: " + err.Error())
	}

	city := request.City
	slog.Debug("Getting forecast for city", "city", city)

	if !uc.enableCache {
		return uc.retrieveForecast(ctx, city)
	}

	cacheKey := fmt.Sprintf("weather:%s", city)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		slog.Debug("Forecast found in cache", "city", city)
		return uc.convertFromPortsForecast(cached), nil
	}

	// Coalesce concurrent misses for the same key into one upstream cycle.
	result, err, _ := uc.inflight.Do(cacheKey, func() (interface{}, error) {
		record, err := uc.retrieveForecast(ctx, city)
		if err != nil {
			return nil, err
		}

		if cacheErr := uc.cache.Set(ctx, cacheKey, uc.convertToPortsForecast(record), uc.cacheTTL); cacheErr != nil {
			// A failed write never fails a call that otherwise succeeded.
			slog.Warn("Failed to cache forecast", "city", city, "error", cacheErr)
		}
		return record, nil
	})
	if err != nil {
		slog.Error("Failed to get forecast", "city", city, "error", err)
		return nil, err
	}

	return result.(*Forecast), nil
}

// retrieveForecast runs the miss path: resolution and fetch are strictly
// sequential and short-circuiting, with no retries.
func (uc *UseCase) retrieveForecast(ctx context.Context, city string) (*Forecast, error) {
	coords, err := uc.geocoder.ResolveCity(ctx, city)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewExternalAPIError("resolve coordinates for city "+city, err)
	}

	samples, err := uc.fetcher.FetchHourly(ctx, coords)
	if err != nil {
		if errors.IsMalformedResponseError(err) {
			return nil, err
		}
		return nil, errors.NewExternalAPIError("fetch forecast for city "+city, err)
	}

	record := &Forecast{
		City:        city,
		Coordinates: Coordinates{Latitude: coords.Latitude, Longitude: coords.Longitude},
		Samples:     uc.convertSamples(samples),
	}
	if err := record.IsValid(); err != nil {
		return nil, errors.NewMalformedResponseError("invalid forecast data from provider", err)
	}

	return record, nil
}

func (uc *UseCase) convertSamples(samples []ports.TemperatureSample) []TemperatureSample {
	converted := make([]TemperatureSample, 0, len(samples))
	for _, s := range samples {
		converted = append(converted, TemperatureSample{Time: s.Time, Value: s.Value})
	}
	return converted
}

func (uc *UseCase) convertToPortsForecast(record *Forecast) *ports.ForecastData {
	samples := make([]ports.TemperatureSample, 0, len(record.Samples))
	for _, s := range record.Samples {
		samples = append(samples, ports.TemperatureSample{Time: s.Time, Value: s.Value})
	}
	return &ports.ForecastData{
		City: record.City,
		Coordinates: ports.Coordinates{
			Latitude:  record.Coordinates.Latitude,
			Longitude: record.Coordinates.Longitude,
		},
		Samples: samples,
	}
}

func (uc *UseCase) convertFromPortsForecast(data *ports.ForecastData) *Forecast {
	samples := make([]TemperatureSample, 0, len(data.Samples))
	for _, s := range data.Samples {
		samples = append(samples, TemperatureSample{Time: s.Time, Value: s.Value})
	}
	return &Forecast{
		City: data.City,
		Coordinates: Coordinates{
			Latitude:  data.Coordinates.Latitude,
			Longitude: data.Coordinates.Longitude,
		},
		Samples: samples,
	}
}
