package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

func newGeocodingServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenMeteoGeocodingAdapter_ResolveCity(t *testing.T) {
	t.Run("NumericCoordinates", func(t *testing.T) {
		server := newGeocodingServer(t, http.StatusOK,
			`{"results":[{"latitude":55.75222,"longitude":37.61556}]}`)
		adapter := NewOpenMeteoGeocodingAdapter(server.URL, 5*time.Second)

		coords, err := adapter.ResolveCity(context.Background(), "Moscow")

		require.NoError(t, err)
		assert.Equal(t, ports.Coordinates{Latitude: "55.75222", Longitude: "37.61556"}, coords)
	})

	t.Run("CommaSeparatorIsNormalized", func(t *testing.T) {
		server := newGeocodingServer(t, http.StatusOK,
			`{"results":[{"latitude":"55,75222","longitude":"37,61556"}]}`)
		adapter := NewOpenMeteoGeocodingAdapter(server.URL, 5*time.Second)

		coords, err := adapter.ResolveCity(context.Background(), "Moscow")

		require.NoError(t, err)
		assert.Equal(t, ports.Coordinates{Latitude: "55.75222", Longitude: "37.61556"}, coords)
	})

	t.Run("ZeroResultsIsNotFound", func(t *testing.T) {
		server := newGeocodingServer(t, http.StatusOK, `{"results":[]}`)
		adapter := NewOpenMeteoGeocodingAdapter(server.URL, 5*time.Second)

		_, err := adapter.ResolveCity(context.Background(), "Nowhere")

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("MissingResultsFieldIsNotFound", func(t *testing.T) {
		server := newGeocodingServer(t, http.StatusOK, `{"generationtime_ms":0.5}`)
		adapter := NewOpenMeteoGeocodingAdapter(server.URL, 5*time.Second)

		_, err := adapter.ResolveCity(context.Background(), "Nowhere")

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("MissingCoordinateFieldsIsMalformed", func(t *testing.T) {
		server := newGeocodingServer(t, http.StatusOK, `{"results":[{"name":"Moscow"}]}`)
		adapter := NewOpenMeteoGeocodingAdapter(server.URL, 5*time.Second)

		_, err := adapter.ResolveCity(context.Background(), "Moscow")

		assert.True(t, errors.IsMalformedResponseError(err))
	})

	t.Run("GarbageCoordinateIsMalformed", func(t *testing.T) {
		server := newGeocodingServer(t, http.StatusOK,
			`{"results":[{"latitude":"not-a-number","longitude":"37.61556"}]}`)
		adapter := NewOpenMeteoGeocodingAdapter(server.URL, 5*time.Second)

		_, err := adapter.ResolveCity(context.Background(), "Moscow")

		assert.True(t, errors.IsMalformedResponseError(err))
	})

	t.Run("NonOKStatusIsExternalAPIError", func(t *testing.T) {
		server := newGeocodingServer(t, http.StatusInternalServerError, `{}`)
		adapter := NewOpenMeteoGeocodingAdapter(server.URL, 5*time.Second)

		_, err := adapter.ResolveCity(context.Background(), "Moscow")

		assert.True(t, errors.IsExternalAPIError(err))
	})

	t.Run("ConnectionErrorIsExternalAPIError", func(t *testing.T) {
		adapter := NewOpenMeteoGeocodingAdapter("http://127.0.0.1:1", 500*time.Millisecond)

		_, err := adapter.ResolveCity(context.Background(), "Moscow")

		assert.True(t, errors.IsExternalAPIError(err))
	})
}
