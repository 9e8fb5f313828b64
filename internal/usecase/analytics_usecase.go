package usecase

import (
	"context"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/taxi-analytics-microservice/internal/domain"
	"github.com/taxi-analytics-microservice/internal/domain/repository"
	pkgerrors "github.com/taxi-analytics-microservice/internal/pkg/errors"
)

// AnalyticsUseCase обрабатывает бизнес-логику аналитики поездок.
// Пустой результат выборки трактуется как отсутствие данных (404):
// таблицы агрегатов не хранят справочник зон, поэтому пустой агрегат
// и несуществующая зона неразличимы
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	logger        *zap.Logger
}

// NewAnalyticsUseCase создает новый экземпляр AnalyticsUseCase
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository, logger *zap.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// GetDemand возвращает спрос по зонам посадки за час суток
func (uc *AnalyticsUseCase) GetDemand(ctx context.Context, hour int) ([]domain.DemandCell, error) {
	cells, err := uc.analyticsRepo.GetDemandByHour(ctx, hour)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, pkgerrors.ErrDemandNotFound
	}
	return cells, nil
}

// GetTipTrends возвращает тренды чаевых по всем зонам
func (uc *AnalyticsUseCase) GetTipTrends(ctx context.Context) ([]domain.TipTrend, error) {
	trends, err := uc.analyticsRepo.GetTipTrends(ctx)
	if err != nil {
		return nil, err
	}
	if len(trends) == 0 {
		return nil, pkgerrors.ErrTipDataNotFound
	}
	return trends, nil
}

// GetZoneTipAverage возвращает среднее процента чаевых по зоне.
// Среднее невзвешенное: строки по способам оплаты входят с равным весом
// независимо от n_trips
func (uc *AnalyticsUseCase) GetZoneTipAverage(ctx context.Context, zoneID int) (*domain.ZoneTipSummary, error) {
	values, err := uc.analyticsRepo.GetZoneTipValues(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, pkgerrors.ErrZoneTipNotFound
	}
	return &domain.ZoneTipSummary{Average: stat.Mean(values, nil)}, nil
}

// GetFareAnomalies возвращает поездки с аномальной стоимостью
func (uc *AnalyticsUseCase) GetFareAnomalies(ctx context.Context) ([]domain.FareAnomaly, error) {
	anomalies, err := uc.analyticsRepo.GetFareAnomalies(ctx)
	if err != nil {
		return nil, err
	}
	if len(anomalies) == 0 {
		return nil, pkgerrors.ErrAnomalyDataNotFound
	}
	return anomalies, nil
}

// GetTripPerformance возвращает агрегаты качества поездок зоны
func (uc *AnalyticsUseCase) GetTripPerformance(ctx context.Context, zoneID int, filter domain.PerformanceFilter) ([]domain.TripPerformance, error) {
	perf, err := uc.analyticsRepo.GetTripPerformance(ctx, zoneID, filter)
	if err != nil {
		return nil, err
	}
	if len(perf) == 0 {
		return nil, pkgerrors.ErrPerformanceNotFound
	}
	return perf, nil
}

// GetPopularRoutes возвращает популярные направления из зоны
func (uc *AnalyticsUseCase) GetPopularRoutes(ctx context.Context, zoneID int, filter domain.RouteFilter) ([]domain.PopularRoute, error) {
	routes, err := uc.analyticsRepo.GetPopularRoutes(ctx, zoneID, filter)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, pkgerrors.ErrRouteDataNotFound
	}
	return routes, nil
}

// GetPaymentAnalysis возвращает разбивку оплат по зоне
func (uc *AnalyticsUseCase) GetPaymentAnalysis(ctx context.Context, zoneID int, filter domain.PaymentFilter) ([]domain.PaymentBreakdown, error) {
	breakdown, err := uc.analyticsRepo.GetPaymentAnalysis(ctx, zoneID, filter)
	if err != nil {
		return nil, err
	}
	if len(breakdown) == 0 {
		return nil, pkgerrors.ErrPaymentDataNotFound
	}
	return breakdown, nil
}
