package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"weatherview.app/internal/adapters/external"
	"weatherview.app/internal/adapters/infrastructure"
	"weatherview.app/internal/config"
	"weatherview.app/internal/core/forecast"
	"weatherview.app/internal/ports"
)

// DependencyContainer wires adapters and the use case from configuration.
// All collaborators are constructed here and injected explicitly; nothing
// is process-global.
type DependencyContainer struct {
	Geocoder      ports.GeocodingProvider
	Fetcher       ports.ForecastProvider
	CacheProvider ports.CacheProvider
	ForecastCache ports.ForecastCache
	CacheMetrics  ports.CacheMetrics
	Registry      *prometheus.Registry

	ForecastUseCase *forecast.UseCase
}

// NewDependencyContainer builds the full dependency graph
func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	registry := prometheus.NewRegistry()
	cacheMetrics := infrastructure.NewCacheMetrics(registry, cfg.Cache.Type.String())

	cacheProvider, err := external.NewCacheProvider(&cfg.Cache, cacheMetrics)
	if err != nil {
		return nil, err
	}

	geocoder := external.NewOpenMeteoGeocodingAdapter(
		cfg.Geocoding.BaseURL,
		time.Duration(cfg.Geocoding.TimeoutSeconds)*time.Second,
	)
	fetcher := external.NewOpenMeteoForecastAdapter(
		cfg.Forecast.BaseURL,
		time.Duration(cfg.Forecast.TimeoutSeconds)*time.Second,
	)
	forecastCache := external.NewForecastCacheAdapter(cacheProvider)

	useCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Geocoder:    geocoder,
		Fetcher:     fetcher,
		Cache:       forecastCache,
		EnableCache: cfg.Weather.EnableCache,
		CacheTTL:    time.Duration(cfg.Weather.CacheTTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	return &DependencyContainer{
		Geocoder:        geocoder,
		Fetcher:         fetcher,
		CacheProvider:   cacheProvider,
		ForecastCache:   forecastCache,
		CacheMetrics:    cacheMetrics,
		Registry:        registry,
		ForecastUseCase: useCase,
	}, nil
}
