package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// OpenMeteoForecastAdapter implements ForecastProvider using the Open-Meteo
// forecast API
type OpenMeteoForecastAdapter struct {
	client  *resty.Client
	baseURL string
}

type forecastResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature2M []float64 `json:"temperature_2m"`
	} `json:"hourly"`
}

// NewOpenMeteoForecastAdapter creates a forecast adapter for the given API
// base URL
func NewOpenMeteoForecastAdapter(baseURL string, timeout time.Duration) *OpenMeteoForecastAdapter {
	return &OpenMeteoForecastAdapter{
		client:  resty.New().SetTimeout(timeout),
		baseURL: baseURL,
	}
}

// FetchHourly retrieves the hourly temperature series for the given
// coordinates. Timestamps are truncated to their "HH:MM" wall-clock label;
// the date component is discarded, so multi-day responses yield repeated
// labels and are passed through untouched.
func (a *OpenMeteoForecastAdapter) FetchHourly(ctx context.Context, coords ports.Coordinates) ([]ports.TemperatureSample, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  coords.Latitude,
			"longitude": coords.Longitude,
			"hourly":    "temperature_2m",
		}).
		Get(a.baseURL + "/forecast")
	if err != nil {
		return nil, errors.NewExternalAPIError("forecast request failed", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, errors.NewExternalAPIError(
			fmt.Sprintf("forecast API returned HTTP %d", resp.StatusCode()), nil)
	}

	var payload forecastResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, errors.NewMalformedResponseError("decode forecast response", err)
	}

	times := payload.Hourly.Time
	temps := payload.Hourly.Temperature2M
	if len(times) == 0 {
		return nil, errors.NewMalformedResponseError("forecast response has an empty hourly series", nil)
	}
	if len(times) != len(temps) {
		return nil, errors.NewMalformedResponseError(
			fmt.Sprintf("forecast arrays are misaligned: %d timestamps, %d temperatures", len(times), len(temps)), nil)
	}

	samples := make([]ports.TemperatureSample, 0, len(times))
	for i, ts := range times {
		label, err := hourLabel(ts)
		if err != nil {
			return nil, errors.NewMalformedResponseError("parse forecast timestamp", err)
		}
		samples = append(samples, ports.TemperatureSample{Time: label, Value: temps[i]})
	}

	return samples, nil
}

// hourLabel extracts the "HH:MM" wall-clock portion of an ISO 8601 local
// timestamp such as "2024-05-01T14:00".
func hourLabel(timestamp string) (string, error) {
	idx := strings.IndexByte(timestamp, 'T')
	if idx < 0 || len(timestamp) < idx+6 {
		return "", fmt.Errorf("timestamp %q has no time component", timestamp)
	}
	return timestamp[idx+1 : idx+6], nil
}
