// Package api provides the HTTP adapters for the hexagonal architecture.
// These adapters translate incoming HTTP requests to use case calls.
package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weatherview.app/internal/core/forecast"
	"weatherview.app/pkg/validation"
)

//go:embed templates/weather.html
var templatesFS embed.FS

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// ForecastUseCase is the use case contract the HTTP adapter depends on
type ForecastUseCase interface {
	GetForecast(ctx context.Context, request forecast.ForecastRequest) (*forecast.Forecast, error)
}

// HTTPServerAdapter implements the HTTP server using Gin
type HTTPServerAdapter struct {
	router          *gin.Engine
	config          ServerConfig
	forecastUseCase ForecastUseCase
	gatherer        prometheus.Gatherer

	// now is injectable so handlers that depend on wall-clock time can be
	// tested deterministically
	now func() time.Time
}

// NewHTTPServerAdapter creates and configures the HTTP server adapter
func NewHTTPServerAdapter(config ServerConfig, forecastUseCase ForecastUseCase, gatherer prometheus.Gatherer) *HTTPServerAdapter {
	s := &HTTPServerAdapter{
		router:          gin.New(),
		config:          config,
		forecastUseCase: forecastUseCase,
		gatherer:        gatherer,
		now:             time.Now,
	}

	registerBindingRules()

	s.router.Use(gin.Recovery())
	s.router.Use(requestIDMiddleware())
	s.router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/weather.html")))
	s.setupRoutes()

	return s
}

func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/weather", s.getWeatherPage)
	s.router.GET("/api/weather", s.getWeather)
	s.router.GET("/health", s.getHealth)

	if s.gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
}

// Router exposes the configured gin engine
func (s *HTTPServerAdapter) Router() *gin.Engine {
	return s.router
}

// Addr returns the listen address for the configured port
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf(":%d", s.config.Port)
}

// registerBindingRules adds custom validation tags to gin's binding
// validator. "notblank" rejects values that are empty after trimming while
// leaving the bound value itself untouched.
func registerBindingRules() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return validation.IsNotEmpty(fl.Field().String())
		})
	}
}

func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestIDMiddleware attaches a request ID to the context and logs each
// request with it
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		slog.Info("request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
