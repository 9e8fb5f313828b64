package repository

import (
	"context"
	"time"

	"github.com/taxi-analytics-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetDatasetStats получает сводку датасета из кеша
	GetDatasetStats(ctx context.Context) (*domain.DatasetStats, error)

	// SetDatasetStats сохраняет сводку датасета в кеше
	SetDatasetStats(ctx context.Context, stats *domain.DatasetStats, ttl time.Duration) error
}
