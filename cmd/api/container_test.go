package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/userdeck/internal/config"
)

func TestNewContainer(t *testing.T) {
	t.Run("wires all dependencies", func(t *testing.T) {
		cfg := config.DefaultConfig()

		c, err := NewContainer(cfg)
		require.NoError(t, err)

		assert.NotNil(t, c.Registry)
		assert.NotNil(t, c.HTTPMetrics)
		assert.NotNil(t, c.UserRepo)
		assert.NotNil(t, c.UserService)
		assert.NotNil(t, c.UserHandler)
		assert.True(t, c.Ready())
	})

	t.Run("seeds demo data when enabled", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.App.SeedDemoData = true

		c, err := NewContainer(cfg)
		require.NoError(t, err)

		count, err := c.UserRepo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 12, count)
	})

	t.Run("starts empty when seeding disabled", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.App.SeedDemoData = false

		c, err := NewContainer(cfg)
		require.NoError(t, err)

		count, err := c.UserRepo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("custom logger option", func(t *testing.T) {
		logger := slog.Default().With(slog.String("test", "container"))

		c, err := NewContainer(config.DefaultConfig(), WithLogger(logger))
		require.NoError(t, err)

		assert.Same(t, logger, c.Logger)
	})
}

func TestContainer_Close(t *testing.T) {
	c, err := NewContainer(config.DefaultConfig())
	require.NoError(t, err)

	assert.NoError(t, c.Close())
}
