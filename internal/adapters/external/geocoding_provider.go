package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
	"weatherview.app/pkg/validation"
)

// OpenMeteoGeocodingAdapter implements GeocodingProvider using the
// Open-Meteo geocoding API
type OpenMeteoGeocodingAdapter struct {
	client  *resty.Client
	baseURL string
}

// decimalString decodes a latitude/longitude field that providers send
// either as a JSON number or as a localized string. Comma decimal
// separators are normalized to dots on decode.
type decimalString string

func (d *decimalString) UnmarshalJSON(data []byte) error {
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	normalized, ok := validation.NormalizeDecimal(raw)
	if !ok {
		return fmt.Errorf("invalid decimal value %q", raw)
	}
	*d = decimalString(normalized)
	return nil
}

type geocodingResult struct {
	Latitude  decimalString `json:"latitude"`
	Longitude decimalString `json:"longitude"`
}

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

// NewOpenMeteoGeocodingAdapter creates a geocoding adapter for the given
// API base URL
func NewOpenMeteoGeocodingAdapter(baseURL string, timeout time.Duration) *OpenMeteoGeocodingAdapter {
	return &OpenMeteoGeocodingAdapter{
		client:  resty.New().SetTimeout(timeout),
		baseURL: baseURL,
	}
}

// ResolveCity resolves a free-text city name to coordinates, requesting at
// most one candidate from the provider
func (a *OpenMeteoGeocodingAdapter) ResolveCity(ctx context.Context, city string) (ports.Coordinates, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":  city,
			"count": "1",
		}).
		Get(a.baseURL + "/search")
	if err != nil {
		return ports.Coordinates{}, errors.NewExternalAPIError("geocoding request failed", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return ports.Coordinates{}, errors.NewExternalAPIError(
			fmt.Sprintf("geocoding API returned HTTP %d", resp.StatusCode()), nil)
	}

	var payload geocodingResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return ports.Coordinates{}, errors.NewMalformedResponseError("decode geocoding response", err)
	}

	if len(payload.Results) == 0 {
		return ports.Coordinates{}, errors.NewNotFoundError("city not found: " + city)
	}

	first := payload.Results[0]
	if first.Latitude == "" || first.Longitude == "" {
		return ports.Coordinates{}, errors.NewMalformedResponseError(
			"geocoding result is missing latitude or longitude", nil)
	}

	return ports.Coordinates{
		Latitude:  string(first.Latitude),
		Longitude: string(first.Longitude),
	}, nil
}
