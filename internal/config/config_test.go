package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "phonebook_raw.csv", cfg.InputPath)
	assert.Equal(t, "phonebook.csv", cfg.OutputPath)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, "csv", cfg.OutputFormat)
	assert.False(t, cfg.SkipHeader)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.RateLimitPerSec)
	assert.Equal(t, ',', cfg.DelimiterRune())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PHONEBOOK_INPUT", "raw.csv")
	t.Setenv("PHONEBOOK_DELIMITER", ";")
	t.Setenv("PHONEBOOK_FORMAT", "excel")
	t.Setenv("PHONEBOOK_SKIP_HEADER", "true")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT_PER_SEC", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "raw.csv", cfg.InputPath)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, "excel", cfg.OutputFormat)
	assert.True(t, cfg.SkipHeader)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.RateLimitPerSec)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			InputPath:       "in.csv",
			OutputPath:      "out.csv",
			Delimiter:       ",",
			OutputFormat:    "csv",
			Port:            "8080",
			RateLimitPerSec: 1,
			MaxUploadBytes:  1,
			LogLevel:        "INFO",
		}
	}

	t.Run("корректная конфигурация", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("многосимвольный разделитель", func(t *testing.T) {
		cfg := valid()
		cfg.Delimiter = ",,"
		assert.Error(t, cfg.Validate())
	})

	t.Run("неизвестный формат", func(t *testing.T) {
		cfg := valid()
		cfg.OutputFormat = "xml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("нечисловой порт", func(t *testing.T) {
		cfg := valid()
		cfg.Port = "abc"
		assert.Error(t, cfg.Validate())
	})

	t.Run("нулевой лимит запросов", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimitPerSec = 0
		assert.Error(t, cfg.Validate())
	})
}
