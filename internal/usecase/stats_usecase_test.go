package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/domain"
	"github.com/taxi-analytics-microservice/internal/usecase"
)

func TestStatsUseCase_GetDatasetStats(t *testing.T) {
	ctx := context.Background()

	counts := map[string]int64{
		"demand_heatmap": 1200,
		"tip_trends":     480,
		"fare_anomalies": 100,
	}

	t.Run("cache hit skips database", func(t *testing.T) {
		debugRepo := &MockDebugRepository{}
		cacheRepo := &MockCacheRepository{}
		cached := &domain.DatasetStats{Tables: counts, GeneratedAt: time.Now()}
		cacheRepo.On("GetDatasetStats", ctx).Return(cached, nil)

		uc := usecase.NewStatsUseCase(debugRepo, cacheRepo, time.Hour, zap.NewNop())
		stats, err := uc.GetDatasetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, stats)
		debugRepo.AssertNotCalled(t, "CountAllRows", mock.Anything)
	})

	t.Run("cache miss counts rows and caches result", func(t *testing.T) {
		debugRepo := &MockDebugRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetDatasetStats", ctx).Return(nil, nil)
		debugRepo.On("CountAllRows", ctx).Return(counts, nil)
		cacheRepo.On("SetDatasetStats", ctx, mock.AnythingOfType("*domain.DatasetStats"), time.Hour).
			Return(nil)

		uc := usecase.NewStatsUseCase(debugRepo, cacheRepo, time.Hour, zap.NewNop())
		stats, err := uc.GetDatasetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, counts, stats.Tables)
		assert.False(t, stats.GeneratedAt.IsZero())
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache failures degrade to recompute", func(t *testing.T) {
		debugRepo := &MockDebugRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetDatasetStats", ctx).Return(nil, errors.New("redis down"))
		debugRepo.On("CountAllRows", ctx).Return(counts, nil)
		cacheRepo.On("SetDatasetStats", ctx, mock.Anything, time.Hour).
			Return(errors.New("redis down"))

		uc := usecase.NewStatsUseCase(debugRepo, cacheRepo, time.Hour, zap.NewNop())
		stats, err := uc.GetDatasetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, counts, stats.Tables)
	})

	t.Run("works without cache repository", func(t *testing.T) {
		debugRepo := &MockDebugRepository{}
		debugRepo.On("CountAllRows", ctx).Return(counts, nil)

		uc := usecase.NewStatsUseCase(debugRepo, nil, time.Hour, zap.NewNop())
		stats, err := uc.GetDatasetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, counts, stats.Tables)
	})

	t.Run("count failure surfaces error", func(t *testing.T) {
		debugRepo := &MockDebugRepository{}
		debugRepo.On("CountAllRows", ctx).Return(nil, errors.New("relation does not exist"))

		uc := usecase.NewStatsUseCase(debugRepo, nil, time.Hour, zap.NewNop())
		_, err := uc.GetDatasetStats(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "count dataset rows")
	})
}
