package ports

import (
	"context"
)

// Coordinates represents a geographic position as decimal strings.
// Latitude and longitude are kept as strings to avoid precision loss from
// providers that localize the decimal separator; values are normalized to
// dot-separated form before they reach this type.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// TemperatureSample is one point of an hourly series: a local wall-clock
// "HH:MM" label and a temperature in degrees Celsius. The label carries no
// date or timezone.
type TemperatureSample struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// ForecastData is the assembled forecast record exchanged through ports.
// City is preserved exactly as originally queried.
type ForecastData struct {
	City        string              `json:"city"`
	Coordinates Coordinates         `json:"coordinates"`
	Samples     []TemperatureSample `json:"samples"`
}

// GeocodingProvider defines the contract for resolving a city name to
// geographic coordinates
type GeocodingProvider interface {
	ResolveCity(ctx context.Context, city string) (Coordinates, error)
}

// ForecastProvider defines the contract for fetching an hourly temperature
// series for a coordinate pair
type ForecastProvider interface {
	FetchHourly(ctx context.Context, coords Coordinates) ([]TemperatureSample, error)
}
