package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherview.app/pkg/errors"
)

const (
	maxRedisDB        = 15
	maxCacheTTLSecs   = 86400
	maxPortNumber     = 65535
	maxTimeoutSeconds = 120
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Geocoding GeocodingConfig `split_words:"true"`
	Forecast  ForecastConfig  `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// GeocodingConfig contains settings for the geocoding API
type GeocodingConfig struct {
	BaseURL        string `envconfig:"GEOCODING_API_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1"`
	TimeoutSeconds int    `envconfig:"GEOCODING_API_TIMEOUT_SECONDS" default:"10"`
}

// ForecastConfig contains settings for the forecast API
type ForecastConfig struct {
	BaseURL        string `envconfig:"FORECAST_API_BASE_URL" default:"https://api.open-meteo.com/v1"`
	TimeoutSeconds int    `envconfig:"FORECAST_API_TIMEOUT_SECONDS" default:"10"`
}

// WeatherConfig contains settings for the forecast retrieval pipeline
type WeatherConfig struct {
	EnableCache     bool `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	CacheTTLSeconds int  `envconfig:"WEATHER_CACHE_TTL_SECONDS" default:"900"`
}

// CacheType represents the type of cache store to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Geocoding.Validate(); err != nil {
		return err
	}
	if err := c.Forecast.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func validateBaseURL(name, url string) error {
	if url == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

// Validate checks geocoding API configuration
func (g *GeocodingConfig) Validate() error {
	if err := validateBaseURL("GEOCODING_API_BASE_URL", g.BaseURL); err != nil {
		return err
	}
	if g.TimeoutSeconds < 1 || g.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("GEOCODING_API_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

// Validate checks forecast API configuration
func (f *ForecastConfig) Validate() error {
	if err := validateBaseURL("FORECAST_API_BASE_URL", f.BaseURL); err != nil {
		return err
	}
	if f.TimeoutSeconds < 1 || f.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("FORECAST_API_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

// Validate checks weather pipeline configuration
func (w *WeatherConfig) Validate() error {
	if w.CacheTTLSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_SECONDS must be at least 1 second", nil)
	}
	if w.CacheTTLSeconds > maxCacheTTLSecs {
		return errors.NewConfigurationError(
			fmt.Sprintf("WEATHER_CACHE_TTL_SECONDS cannot exceed %d seconds (24 hours)", maxCacheTTLSecs), nil)
	}
	return nil
}

// Validate checks cache store configuration
func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}
	return nil
}

// Validate checks redis configuration
func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 || r.ReadTimeout < 1 || r.WriteTimeout < 1 {
		return errors.NewConfigurationError("redis timeouts must be at least 1 second", nil)
	}
	return nil
}
