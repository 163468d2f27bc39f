package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":8000", cfg.Addr)
		assert.Empty(t, cfg.AllowedOrigins)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ADDR", ":9999")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}
