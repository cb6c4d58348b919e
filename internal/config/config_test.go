package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/userdeck/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.NotNil(t, cfg)

	// App defaults
	assert.Equal(t, "userdeck", cfg.App.Name)
	assert.True(t, cfg.App.SeedDemoData)

	// Server defaults
	assert.Equal(t, config.DefaultHost, cfg.Server.Host)
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
	assert.Equal(t, config.DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, config.DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, config.DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)

	// Rate limit defaults
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, config.DefaultRateLimitLimit, cfg.RateLimit.Limit)
	assert.Equal(t, config.DefaultRateLimitWindow, cfg.RateLimit.Window)

	// Log defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		expected string
	}{
		{name: "default address", host: "0.0.0.0", port: 8080, expected: "0.0.0.0:8080"},
		{name: "localhost", host: "localhost", port: 3000, expected: "localhost:3000"},
		{name: "custom host and port", host: "192.168.1.100", port: 9090, expected: "192.168.1.100:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.ServerConfig{Host: tt.host, Port: tt.port}
			assert.Equal(t, tt.expected, cfg.Address())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, config.DefaultConfig().Validate())
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Server.Port = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrConfigInvalid)
		assert.Contains(t, err.Error(), "server.port")
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Level = "verbose"

		err := cfg.Validate()
		require.ErrorIs(t, err, config.ErrInvalidLogLevel)
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.ErrorIs(t, err, config.ErrInvalidLogFormat)
	})

	t.Run("rate limit validated only when enabled", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.RateLimit.Enabled = false
		cfg.RateLimit.Limit = 0
		require.NoError(t, cfg.Validate())

		cfg.RateLimit.Enabled = true
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate_limit.limit")
	})

	t.Run("collects multiple errors", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Server.Port = -1
		cfg.Log.Level = "verbose"
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
		assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
		assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
	})
}

func TestLoader_LoadFromFile(t *testing.T) {
	t.Run("loads YAML file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := `
app:
  name: userdeck-test
  seed_demo_data: false
server:
  host: 127.0.0.1
  port: 9191
log:
  level: debug
  format: text
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := config.LoadFromPath(path)
		require.NoError(t, err)

		assert.Equal(t, "userdeck-test", cfg.App.Name)
		assert.False(t, cfg.App.SeedDemoData)
		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 9191, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)

		// Untouched sections keep their defaults.
		assert.Equal(t, config.DefaultReadTimeout, cfg.Server.ReadTimeout)
	})

	t.Run("explicit missing path is an error", func(t *testing.T) {
		_, err := config.LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrConfigNotFound)
	})

	t.Run("invalid YAML is an error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))

		_, err := config.LoadFromPath(path)
		require.Error(t, err)
	})
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Run("env vars override file values", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9191\n"), 0o600))

		t.Setenv("SERVER_PORT", "7070")
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("APP_SEED_DEMO_DATA", "false")
		t.Setenv("SERVER_READ_TIMEOUT", "45s")

		cfg, err := config.LoadFromPath(path)
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.False(t, cfg.App.SeedDemoData)
		assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	})

	t.Run("invalid duration env is an error", func(t *testing.T) {
		t.Setenv("SERVER_READ_TIMEOUT", "soon")

		loader := config.NewLoader().WithConfigPaths(nil)
		_, err := loader.Load("")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidDuration)
	})

	t.Run("invalid port env fails validation", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "99999")

		loader := config.NewLoader().WithConfigPaths(nil)
		_, err := loader.Load("")
		require.ErrorIs(t, err, config.ErrConfigInvalid)
	})
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.False(t, cfg.IsDevelopment())

	cfg.Log.Level = "debug"
	assert.True(t, cfg.IsDevelopment())
}
