// Package main provides the API server entry point.
package main

import (
	"github.com/labstack/echo/v4"

	"github.com/lllypuk/userdeck/internal/infrastructure/httpserver"
	"github.com/lllypuk/userdeck/internal/middleware"
)

// SetupRoutes configures all API routes and middleware chains.
func SetupRoutes(c *Container) *httpserver.Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpserver.NewValidator()

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.Logger = c.Logger

	recoveryConfig := middleware.DefaultRecoveryConfig()
	recoveryConfig.Logger = c.Logger

	routerConfig := httpserver.RouterConfig{
		Logger:            c.Logger,
		CORSConfig:        middleware.DefaultCORSConfig(),
		LoggingConfig:     loggingConfig,
		RecoveryConfig:    recoveryConfig,
		MetricsMiddleware: c.HTTPMetrics.Middleware(),
		APIPrefix:         "/api",
	}

	if c.Config.RateLimit.Enabled {
		routerConfig.RateLimitMiddleware = middleware.RateLimit(middleware.RateLimitConfig{
			Logger:    c.Logger,
			Store:     middleware.NewMemoryRateLimitStore(),
			Limit:     c.Config.RateLimit.Limit,
			Window:    c.Config.RateLimit.Window,
			SkipPaths: []string{"/health", "/ready", "/metrics"},
		})
	}

	router := httpserver.NewRouter(e, routerConfig)

	router.RegisterHealthEndpoints(c.Ready)
	router.RegisterMetricsEndpoint(c.Registry)

	router.RegisterAll(c.UserHandler)

	if c.Config.IsDevelopment() {
		router.PrintRoutes()
	}

	return router
}
