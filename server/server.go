package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"phonebook/internal/config"
	"phonebook/normalization"
	"phonebook/server/handlers"
	"phonebook/server/middleware"
)

// Server HTTP-сервер нормализации телефонной книги.
type Server struct {
	config *config.Config
	engine *gin.Engine
	logger *slog.Logger
}

// NewServer собирает сервер с полным набором middleware и маршрутов.
func NewServer(cfg *config.Config) *Server {
	logger := ConfigureLogger(cfg.LogLevel)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		middleware.GinRequestIDMiddleware(),
		middleware.GinLoggerMiddleware(logger),
		middleware.GinRecoveryMiddleware(),
		middleware.GinCORSMiddleware(),
		middleware.GinGzipMiddleware(),
		middleware.GinRateLimitMiddleware(cfg.RateLimitPerSec),
	)

	handler := handlers.NewPhonebookHandler(normalization.NewPipeline(logger), cfg.MaxUploadBytes, logger)

	api := engine.Group("/api")
	api.GET("/health", handler.Health)
	api.POST("/phonebook/normalize", handler.Normalize)

	return &Server{
		config: cfg,
		engine: engine,
		logger: logger,
	}
}

// Engine возвращает собранный роутер (используется в тестах).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run запускает сервер и блокируется до его остановки.
func (s *Server) Run() error {
	s.logger.Info("Starting phonebook server", "port", s.config.Port)
	return s.engine.Run(":" + s.config.Port)
}
