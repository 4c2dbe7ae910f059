package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherview.app/pkg/errors"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://geocoding-api.open-meteo.com/v1", cfg.Geocoding.BaseURL)
	assert.Equal(t, "https://api.open-meteo.com/v1", cfg.Forecast.BaseURL)
	assert.True(t, cfg.Weather.EnableCache)
	assert.Equal(t, 900, cfg.Weather.CacheTTLSeconds)
	assert.Equal(t, 15*time.Minute, time.Duration(cfg.Weather.CacheTTLSeconds)*time.Second)
	assert.Equal(t, CacheTypeMemory, cfg.Cache.Type)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Addr)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("WEATHER_CACHE_TTL_SECONDS", "60")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 60, cfg.Weather.CacheTTLSeconds)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "PortTooLarge", key: "SERVER_PORT", value: "70000"},
		{name: "PortZero", key: "SERVER_PORT", value: "0"},
		{name: "BadGeocodingURL", key: "GEOCODING_API_BASE_URL", value: "ftp://example.com"},
		{name: "EmptyForecastURL", key: "FORECAST_API_BASE_URL", value: ""},
		{name: "ZeroTTL", key: "WEATHER_CACHE_TTL_SECONDS", value: "0"},
		{name: "TTLOverOneDay", key: "WEATHER_CACHE_TTL_SECONDS", value: "100000"},
		{name: "UnknownCacheType", key: "CACHE_TYPE", value: "memcached"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadConfig()
			assert.Nil(t, cfg)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestLoadConfig_RedisValidatedOnlyWhenSelected(t *testing.T) {
	// Broken redis settings are ignored while the memory cache is selected
	t.Setenv("CACHE_TYPE", "memory")
	t.Setenv("REDIS_ADDR", "")

	_, err := LoadConfig()
	assert.NoError(t, err)

	t.Setenv("CACHE_TYPE", "redis")

	_, err = LoadConfig()
	assert.True(t, errors.IsConfigurationError(err))
}

func TestCacheType_RoundTrip(t *testing.T) {
	assert.Equal(t, "memory", CacheTypeMemory.String())
	assert.Equal(t, "redis", CacheTypeRedis.String())
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("bogus"))
	assert.False(t, CacheTypeUnknown.IsValid())
}
