package api

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherview.app/internal/core/forecast"
	"weatherview.app/pkg/errors"
)

// weatherQuery binds the inbound city parameter
type weatherQuery struct {
	City string `form:"city" binding:"required,notblank"`
}

// SampleResponse is one hourly point in the JSON representation
type SampleResponse struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
}

// ForecastResponse represents the HTTP response for forecast data
type ForecastResponse struct {
	City               string           `json:"city"`
	Latitude           string           `json:"latitude"`
	Longitude          string           `json:"longitude"`
	CurrentTemperature string           `json:"current_temperature"`
	Samples            []SampleResponse `json:"samples"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query weatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return
	}

	record, err := s.forecastUseCase.GetForecast(c.Request.Context(), forecast.ForecastRequest{City: query.City})
	if err != nil {
		slog.Error("Forecast use case error", "error", err, "city", query.City)
		s.handleError(c, err)
		return
	}

	nearest, err := forecast.NearestSample(record.Samples, s.now())
	if err != nil {
		s.handleError(c, errors.NewMalformedResponseError("select current temperature", err))
		return
	}

	samples := make([]SampleResponse, 0, len(record.Samples))
	for _, sample := range record.Samples {
		samples = append(samples, SampleResponse{Time: sample.Time, Temperature: sample.Value})
	}

	c.JSON(http.StatusOK, ForecastResponse{
		City:               record.City,
		Latitude:           record.Coordinates.Latitude,
		Longitude:          record.Coordinates.Longitude,
		CurrentTemperature: fmt.Sprintf("%.1f", nearest.Value),
		Samples:            samples,
	})
}

// getWeatherPage handles GET /weather requests and renders the HTML page
// with the current temperature and an embedded SVG chart
func (s *HTTPServerAdapter) getWeatherPage(c *gin.Context) {
	var query weatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return
	}

	record, err := s.forecastUseCase.GetForecast(c.Request.Context(), forecast.ForecastRequest{City: query.City})
	if err != nil {
		slog.Error("Forecast use case error", "error", err, "city", query.City)
		s.handleError(c, err)
		return
	}

	nearest, err := forecast.NearestSample(record.Samples, s.now())
	if err != nil {
		s.handleError(c, errors.NewMalformedResponseError("select current temperature", err))
		return
	}

	svg := renderTemperatureChartSVG(forecast.ChartPoints(record.Samples))

	c.HTML(http.StatusOK, "weather.html", gin.H{
		"City":        record.City,
		"Temperature": fmt.Sprintf("%.1f", nearest.Value),
		"Chart":       template.HTML(svg),
	})
}
