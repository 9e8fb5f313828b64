package main

// @title Taxi Analytics Microservice API
// @version 1.0.0
// @description Read-only аналитика по предрассчитанным агрегатам поездок NYC Yellow Taxi.
// @description
// @description Основные возможности:
// @description - Тепловая карта спроса по зонам посадки и часам суток
// @description - Тренды чаевых по зонам и способам оплаты
// @description - Поездки с аномальной стоимостью
// @description - Агрегаты качества поездок, популярные направления, разбивка оплат
// @description - Диагностика схемы хранилища и справочного файла зон

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/taxi-analytics-microservice/docs"
	"github.com/taxi-analytics-microservice/internal/config"
	httpDelivery "github.com/taxi-analytics-microservice/internal/delivery/http"
	"github.com/taxi-analytics-microservice/internal/delivery/http/handler"
	"github.com/taxi-analytics-microservice/internal/domain/repository"
	"github.com/taxi-analytics-microservice/internal/pkg/logger"
	"github.com/taxi-analytics-microservice/internal/repository/cache"
	"github.com/taxi-analytics-microservice/internal/repository/postgres"
	"github.com/taxi-analytics-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Taxi Analytics Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("database", cfg.Database.DBName),
	)

	// 3. Bootstrap PostgreSQL engine with bounded retry: Cloud SQL proxy
	// and instance may come up after the service
	connector := postgres.NewConnector(&cfg.Database, log)
	db, err := connector.Acquire(context.Background())
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Ensure aggregate tables exist; serving without schema is worse
	// than crash-looping
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}
	cancel()

	// 5. Connect to Redis (optional stats cache)
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Host != "" {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			// Кеш необязателен: сводка будет считаться на каждый запрос
			log.Warn("Redis unavailable, stats cache disabled", zap.Error(err))
		} else {
			cacheRepo = cache.NewCacheRepository(redisClient)
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}()
		}
	} else {
		log.Info("REDIS_HOST is empty, stats cache disabled")
	}

	// 6. Initialize Repositories
	analyticsRepo := postgres.NewAnalyticsRepository(db, log)
	debugRepo := postgres.NewDebugRepository(db, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo, log)
	statsUC := usecase.NewStatsUseCase(debugRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)
	debugUC := usecase.NewDebugUseCase(debugRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	debugHandler := handler.NewDebugHandler(debugUC, log)
	zonesHandler := handler.NewZonesHandler(&cfg.Zones, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		analyticsHandler,
		statsHandler,
		debugHandler,
		zonesHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Metrics listener on a separate port
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		log.Info("Starting metrics listener", zap.String("address", cfg.Metrics.Addr))
		if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics listener failed", zap.Error(err))
		}
	}()

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
