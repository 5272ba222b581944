package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.Host)
	assert.Equal(t, "qwen/qwen-2.5-72b-instruct", cfg.Model)
	assert.Equal(t, 1000, cfg.MaxTokens)
	assert.InDelta(t, 0.3, cfg.Temperature, 1e-9)
	assert.Empty(t, cfg.APIKey)
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithHost("https://example.test/api"),
		WithModel("some/model"),
		WithAPIKey("sk-test"),
		WithMaxTokens(256),
		WithTemperature(0.7),
	)
	assert.Equal(t, "https://example.test/api", cfg.Host)
	assert.Equal(t, "some/model", cfg.Model)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"adds v1 suffix", "https://openrouter.ai/api", "https://openrouter.ai/api/v1"},
		{"strips trailing slash first", "https://openrouter.ai/api/", "https://openrouter.ai/api/v1"},
		{"already normalized", "https://openrouter.ai/api/v1", "https://openrouter.ai/api/v1"},
		{"empty host untouched", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("empty API key is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.APIKey = ""
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Model = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive max tokens", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxTokens = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temperature = 2.5
		assert.Error(t, cfg.Validate())
	})
}
