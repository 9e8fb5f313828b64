package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/taxi-analytics-microservice/internal/domain"
)

// MockAnalyticsRepository is a mock of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) GetDemandByHour(ctx context.Context, hour int) ([]domain.DemandCell, error) {
	args := m.Called(ctx, hour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DemandCell), args.Error(1)
}

func (m *MockAnalyticsRepository) GetTipTrends(ctx context.Context) ([]domain.TipTrend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipTrend), args.Error(1)
}

func (m *MockAnalyticsRepository) GetZoneTipValues(ctx context.Context, zoneID int) ([]float64, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockAnalyticsRepository) GetFareAnomalies(ctx context.Context) ([]domain.FareAnomaly, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FareAnomaly), args.Error(1)
}

func (m *MockAnalyticsRepository) GetTripPerformance(ctx context.Context, zoneID int, filter domain.PerformanceFilter) ([]domain.TripPerformance, error) {
	args := m.Called(ctx, zoneID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripPerformance), args.Error(1)
}

func (m *MockAnalyticsRepository) GetPopularRoutes(ctx context.Context, zoneID int, filter domain.RouteFilter) ([]domain.PopularRoute, error) {
	args := m.Called(ctx, zoneID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularRoute), args.Error(1)
}

func (m *MockAnalyticsRepository) GetPaymentAnalysis(ctx context.Context, zoneID int, filter domain.PaymentFilter) ([]domain.PaymentBreakdown, error) {
	args := m.Called(ctx, zoneID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentBreakdown), args.Error(1)
}

// MockDebugRepository is a mock of DebugRepository
type MockDebugRepository struct {
	mock.Mock
}

func (m *MockDebugRepository) GetTableColumns(ctx context.Context, table string) ([]domain.TableColumn, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TableColumn), args.Error(1)
}

func (m *MockDebugRepository) GetZoneCoverage(ctx context.Context) (map[string][]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]int), args.Error(1)
}

func (m *MockDebugRepository) CountAllRows(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetDatasetStats(ctx context.Context) (*domain.DatasetStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetStats), args.Error(1)
}

func (m *MockCacheRepository) SetDatasetStats(ctx context.Context, stats *domain.DatasetStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}
