package server

import (
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger глобальный структурированный логгер
	Logger *slog.Logger
)

func init() {
	// Инициализируем структурированный логгер в формате JSON
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// ConfigureLogger пересоздает глобальный логгер с уровнем из конфигурации
// и делает его логгером по умолчанию для всего процесса.
func ConfigureLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(Logger)
	return Logger
}
