package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/taxi-analytics-microservice/internal/config"
	"github.com/taxi-analytics-microservice/internal/pkg/metrics"
	"go.uber.org/zap"
)

// Connector поднимает общий пул соединений с ограниченным числом повторов:
// прокси и инстанс Cloud SQL могут стать доступны позже самого сервиса
type Connector struct {
	cfg    *config.DatabaseConfig
	logger *zap.Logger
	dial   func(ctx context.Context) (*DB, error)

	mu sync.Mutex
	db *DB
}

func NewConnector(cfg *config.DatabaseConfig, logger *zap.Logger) *Connector {
	c := &Connector{
		cfg:    cfg,
		logger: logger,
	}
	c.dial = c.open
	return c
}

// Acquire возвращает пул, создавая его при первом обращении; удачный
// результат запоминается до конца процесса, неудачный - нет
func (c *Connector) Acquire(ctx context.Context) (*DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.connectWithRetry(ctx)
	if err != nil {
		return nil, err
	}

	c.db = db
	return db, nil
}

func (c *Connector) connectWithRetry(ctx context.Context) (*DB, error) {
	var lastErr error

	for attempt := 1; attempt <= c.cfg.ConnectRetries; attempt++ {
		db, err := c.dial(ctx)
		if err == nil {
			metrics.DBConnectAttempts.WithLabelValues("success").Inc()
			if attempt > 1 {
				c.logger.Info("Database connection established after retries",
					zap.Int("attempt", attempt),
				)
			}
			return db, nil
		}

		if !isConnectivityError(err) {
			metrics.DBConnectAttempts.WithLabelValues("fatal").Inc()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		lastErr = err
		metrics.DBConnectAttempts.WithLabelValues("retryable").Inc()
		c.logger.Warn("Database connection attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.cfg.ConnectRetries),
			zap.Duration("retry_delay", c.cfg.ConnectRetryDelay),
			zap.Error(err),
		)

		if attempt < c.cfg.ConnectRetries {
			select {
			case <-time.After(c.cfg.ConnectRetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", c.cfg.ConnectRetries, lastErr)
}

func (c *Connector) open(ctx context.Context) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", c.cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Connection pool settings: persistent pool plus bounded burst overflow
	db.SetMaxOpenConns(c.cfg.PoolSize + c.cfg.MaxOverflow)
	db.SetMaxIdleConns(c.cfg.PoolSize)
	db.SetConnMaxLifetime(c.cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(c.cfg.ConnMaxIdleTime)

	var one int
	if err := db.QueryRowxContext(ctx, "SELECT 1").Scan(&one); err != nil {
		db.Close()
		return nil, err
	}

	c.logger.Info("PostgreSQL connected",
		zap.String("database", c.cfg.DBName),
		zap.String("env", c.cfg.Env),
	)

	return &DB{DB: db, logger: c.logger}, nil
}

// isConnectivityError отличает недоступность сети от ответа сервера:
// ошибка, дошедшая до протокола Postgres, повторами не лечится
func isConnectivityError(err error) bool {
	var pgErr *pgconn.PgError
	return !errors.As(err, &pgErr)
}
