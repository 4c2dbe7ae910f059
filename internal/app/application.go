package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"weatherview.app/internal/adapters/api"
	"weatherview.app/internal/config"
	"weatherview.app/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Application owns the configured dependency graph and the HTTP server
// lifecycle.
type Application struct {
	config     *config.Config
	deps       *DependencyContainer
	httpServer *http.Server
}

// NewApplication loads configuration and wires the application
func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger.Setup(cfg.LogLevel)

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	server := api.NewHTTPServerAdapter(
		api.ServerConfig{Port: cfg.Server.Port},
		deps.ForecastUseCase,
		deps.Registry,
	)

	return &Application{
		config: cfg,
		deps:   deps,
		httpServer: &http.Server{
			Addr:              server.Addr(),
			Handler:           server.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Config returns the loaded configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Start runs the HTTP server until it is shut down
func (a *Application) Start() error {
	slog.Info("Starting HTTP server", "addr", a.httpServer.Addr)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and releases cache resources
func (a *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if closer, ok := a.deps.CacheProvider.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("Error closing cache provider", "error", err)
		}
	}

	slog.Info("Application stopped")
	return nil
}
