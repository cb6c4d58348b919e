// Package main provides the API server entry point.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	userapp "github.com/lllypuk/userdeck/internal/application/user"
	"github.com/lllypuk/userdeck/internal/config"
	httphandler "github.com/lllypuk/userdeck/internal/handler/http"
	"github.com/lllypuk/userdeck/internal/infrastructure/metrics"
	"github.com/lllypuk/userdeck/internal/infrastructure/repository/memory"
)

// Container initialization timeouts.
const (
	containerInitTimeout = 10 * time.Second
)

// Container holds all application dependencies and manages their lifecycle.
type Container struct {
	// Configuration
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	// Repositories
	UserRepo *memory.UserRepository

	// Services
	UserService *userapp.Service

	// HTTP Handlers
	UserHandler *httphandler.UserHandler
}

// ContainerOption configures the Container.
type ContainerOption func(*Container)

// WithLogger sets a custom logger for the container.
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.Logger = logger
	}
}

// NewContainer creates a new dependency injection container.
func NewContainer(cfg *config.Config, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	ctx, cancel := context.WithTimeout(context.Background(), containerInitTimeout)
	defer cancel()

	c.initMetrics()

	if err := c.initRepositories(ctx); err != nil {
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	return c, nil
}

// initMetrics sets up the Prometheus registry and HTTP metrics.
func (c *Container) initMetrics() {
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(collectors.NewGoCollector())
	c.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	c.HTTPMetrics = metrics.NewHTTPMetrics(c.Registry)
}

// initRepositories sets up the in-memory store and optionally seeds it.
func (c *Container) initRepositories(ctx context.Context) error {
	c.UserRepo = memory.NewUserRepository()

	if c.Config.App.SeedDemoData {
		if err := memory.SeedDemoData(ctx, c.UserRepo); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}

		count, err := c.UserRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count seeded users: %w", err)
		}
		c.Logger.Info("demo data seeded", slog.Int("users", count))
	}

	return nil
}

// initServices sets up the application services.
func (c *Container) initServices() {
	c.UserService = userapp.NewService(c.UserRepo)
}

// initHandlers sets up the HTTP handlers.
func (c *Container) initHandlers() {
	c.UserHandler = httphandler.NewUserHandler(c.UserService)
}

// Ready reports whether the container is fully wired and able to serve.
func (c *Container) Ready() bool {
	return c.UserRepo != nil && c.UserService != nil && c.UserHandler != nil
}

// Close releases container resources. The store is in-memory so there is
// nothing to disconnect; the method exists for a uniform shutdown path.
func (c *Container) Close() error {
	c.Logger.Info("container closed")
	return nil
}
