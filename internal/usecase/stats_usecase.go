package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/domain"
	"github.com/taxi-analytics-microservice/internal/domain/repository"
)

// StatsUseCase обрабатывает бизнес-логику для сводки датасета
type StatsUseCase struct {
	debugRepo repository.DebugRepository
	cacheRepo repository.CacheRepository // nil, если кеш отключен
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	debugRepo repository.DebugRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		debugRepo: debugRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GetDatasetStats возвращает счётчики строк по таблицам, используя кеш
// когда возможно; сбой кеша деградирует до пересчёта, не до ошибки запроса
func (uc *StatsUseCase) GetDatasetStats(ctx context.Context) (*domain.DatasetStats, error) {
	// 1. Проверяем кеш
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetDatasetStats(ctx)
		if err == nil && cached != nil {
			uc.logger.Debug("Dataset stats fetched from cache")
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to get dataset stats from cache", zap.Error(err))
		}
	}

	// 2. Считаем по БД
	uc.logger.Debug("Counting dataset rows in database")
	counts, err := uc.debugRepo.CountAllRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("count dataset rows: %w", err)
	}

	stats := &domain.DatasetStats{
		Tables:      counts,
		GeneratedAt: time.Now(),
	}

	// 3. Кешируем
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetDatasetStats(ctx, stats, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache dataset stats", zap.Error(err))
			// Не возвращаем ошибку, т.к. данные уже получены
		}
	}

	return stats, nil
}
