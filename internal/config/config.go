package config

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"
)

// Config конфигурация приложения. Значения берутся из переменных
// окружения, флаги командной строки имеют приоритет.
type Config struct {
	// Файлы по умолчанию
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`

	// Формат таблицы
	Delimiter    string `json:"delimiter"`
	OutputFormat string `json:"output_format"`
	SkipHeader   bool   `json:"skip_header"`

	// Сервер
	Port            string `json:"port"`
	RateLimitPerSec int    `json:"rate_limit_per_sec"`
	MaxUploadBytes  int64  `json:"max_upload_bytes"`

	// Логирование
	LogLevel string `json:"log_level"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig() (*Config, error) {
	config := &Config{
		InputPath:  getEnv("PHONEBOOK_INPUT", "phonebook_raw.csv"),
		OutputPath: getEnv("PHONEBOOK_OUTPUT", "phonebook.csv"),

		Delimiter:    getEnv("PHONEBOOK_DELIMITER", ","),
		OutputFormat: getEnv("PHONEBOOK_FORMAT", "csv"),
		SkipHeader:   getEnv("PHONEBOOK_SKIP_HEADER", "false") == "true",

		Port:            getEnv("SERVER_PORT", "8080"),
		RateLimitPerSec: getEnvInt("RATE_LIMIT_PER_SEC", 10),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate проверяет согласованность конфигурации.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	switch c.OutputFormat {
	case "csv", "json", "excel":
	default:
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
	if c.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("server port must be numeric, got %q", c.Port)
	}
	if c.RateLimitPerSec <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimitPerSec)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// DelimiterRune возвращает разделитель как руну.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// getEnv получает переменную окружения или возвращает значение по умолчанию.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 получает переменную окружения как int64 или возвращает значение по умолчанию.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
