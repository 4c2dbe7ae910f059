package forecast

import (
	"fmt"
	"strings"
)

// Coordinates holds a geographic position as dot-separated decimal strings.
type Coordinates struct {
	Latitude  string
	Longitude string
}

// TemperatureSample is one hourly point: a local wall-clock "HH:MM" label
// and a temperature in degrees Celsius. Labels carry no date, so a
// multi-day series may contain duplicate labels; they are kept as-is.
type TemperatureSample struct {
	Time  string
	Value float64
}

// Forecast is the record assembled for one city: the city string exactly as
// queried, its resolved coordinates, and the hourly series in provider
// order. Records are never mutated after assembly; a cache miss always
// produces a wholly new record.
type Forecast struct {
	City        string
	Coordinates Coordinates
	Samples     []TemperatureSample
}

// ForecastRequest represents a request for forecast information.
//
// The city is used verbatim: no trimming, casing, or other normalization is
// applied, so differently-spelled requests resolve and cache independently.
type ForecastRequest struct {
	City string
}

// IsValid validates the request
func (r *ForecastRequest) IsValid() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// IsValid validates an assembled forecast record
func (f *Forecast) IsValid() error {
	if strings.TrimSpace(f.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if f.Coordinates.Latitude == "" || f.Coordinates.Longitude == "" {
		return fmt.Errorf("coordinates cannot be empty")
	}
	if len(f.Samples) == 0 {
		return fmt.Errorf("samples cannot be empty")
	}
	return nil
}
