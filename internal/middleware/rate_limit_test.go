package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/userdeck/internal/middleware"
)

func TestMemoryRateLimitStore(t *testing.T) {
	ctx := context.Background()
	store := middleware.NewMemoryRateLimitStore()

	for i := int64(1); i <= 3; i++ {
		count, err := store.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	ttl, err := store.GetTTL(ctx, "k")
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Minute)

	// Independent keys count separately.
	count, err := store.Increment(ctx, "other", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// An expired window restarts counting.
	_, err = store.Increment(ctx, "short", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	count, err = store.Increment(ctx, "short", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func newLimitedEcho(limit, burst int) *echo.Echo {
	e := echo.New()
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Store:     middleware.NewMemoryRateLimitStore(),
		Limit:     limit,
		BurstSize: burst,
		Window:    time.Minute,
	}))
	e.GET("/api/users", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestRateLimit(t *testing.T) {
	t.Run("allows up to limit plus burst, then 429", func(t *testing.T) {
		e := newLimitedEcho(2, 1)

		for i := range 4 {
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if i < 3 {
				assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
			} else {
				assert.Equal(t, http.StatusTooManyRequests, rec.Code)
				assert.Contains(t, rec.Body.String(), "Too many requests")
				assert.NotEmpty(t, rec.Header().Get("Retry-After"))
			}
		}
	})

	t.Run("sets rate limit headers", func(t *testing.T) {
		e := newLimitedEcho(5, 0)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "5", rec.Header().Get("X-Ratelimit-Limit"))
		assert.Equal(t, "4", rec.Header().Get("X-Ratelimit-Remaining"))
	})

	t.Run("nil store disables limiting", func(t *testing.T) {
		e := echo.New()
		e.Use(middleware.RateLimit(middleware.RateLimitConfig{Limit: 1}))
		e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		for range 5 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
