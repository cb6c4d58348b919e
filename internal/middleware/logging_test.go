package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/userdeck/internal/middleware"
)

func TestLogging(t *testing.T) {
	t.Run("logs the request and sets a request id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		e := echo.New()
		e.Use(middleware.Logging(middleware.LoggingConfig{Logger: logger}))
		e.GET("/api/users", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/users?page=2", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

		out := buf.String()
		assert.Contains(t, out, "HTTP request")
		assert.Contains(t, out, "/api/users")
		assert.Contains(t, out, "page=2")
	})

	t.Run("reuses the inbound request id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		e := echo.New()
		e.Use(middleware.Logging(middleware.LoggingConfig{Logger: logger}))
		e.GET("/", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "client-supplied-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-supplied-id", rec.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), "client-supplied-id")
	})

	t.Run("skips configured paths", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		e := echo.New()
		e.Use(middleware.Logging(middleware.LoggingConfig{
			Logger:    logger,
			SkipPaths: []string{"/health"},
		}))
		e.GET("/health", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, buf.String())
	})
}
