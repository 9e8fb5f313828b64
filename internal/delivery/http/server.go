package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/config"
	"github.com/taxi-analytics-microservice/internal/delivery/http/handler"
	"github.com/taxi-analytics-microservice/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	analyticsHandler *handler.AnalyticsHandler
	statsHandler     *handler.StatsHandler
	debugHandler     *handler.DebugHandler
	zonesHandler     *handler.ZonesHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	analyticsHandler *handler.AnalyticsHandler,
	statsHandler *handler.StatsHandler,
	debugHandler *handler.DebugHandler,
	zonesHandler *handler.ZonesHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Taxi Analytics Microservice",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		analyticsHandler: analyticsHandler,
		statsHandler:     statsHandler,
		debugHandler:     debugHandler,
		zonesHandler:     zonesHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now(),
		})
	})

	// Analytics routes
	api.Get("/demand", s.analyticsHandler.GetDemand)
	api.Get("/tips", s.analyticsHandler.GetTipTrends)
	api.Get("/tips/:zone_id", s.analyticsHandler.GetZoneTipAverage)
	api.Get("/anomalies", s.analyticsHandler.GetFareAnomalies)
	api.Get("/trip-performance/:zone_id", s.analyticsHandler.GetTripPerformance)
	api.Get("/popular-routes/:zone_id", s.analyticsHandler.GetPopularRoutes)
	api.Get("/payment-analysis/:zone_id", s.analyticsHandler.GetPaymentAnalysis)

	// Stats
	api.Get("/stats", s.statsHandler.GetDatasetStats)

	// Debug routes - интроспекция хранилища и справочного файла зон
	debug := api.Group("/debug")
	debug.Get("/schema", s.debugHandler.GetSchema)
	debug.Get("/locations", s.debugHandler.GetLocations)
	debug.Get("/taxi-zones-sample", s.zonesHandler.Sample)
	debug.Get("/taxi-zones-raw", s.zonesHandler.Raw)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App - доступ к fiber-приложению для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
