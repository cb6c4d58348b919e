package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/lllypuk/userdeck/internal/middleware"
)

func TestRecovery(t *testing.T) {
	t.Run("panic becomes a 500 response", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		e := echo.New()
		e.Use(middleware.RecoveryWithConfig(middleware.RecoveryConfig{Logger: logger}))
		e.GET("/boom", func(echo.Context) error {
			panic("something went sideways")
		})

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal server error")
		assert.Contains(t, buf.String(), "panic recovered")
		assert.Contains(t, buf.String(), "something went sideways")
	})

	t.Run("normal requests pass through", func(t *testing.T) {
		e := echo.New()
		e.Use(middleware.RecoveryWithConfig(middleware.DefaultRecoveryConfig()))
		e.GET("/", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
