package repository

import (
	"context"

	"github.com/taxi-analytics-microservice/internal/domain"
)

// AnalyticsRepository интерфейс чтения предрассчитанных агрегатов поездок
type AnalyticsRepository interface {
	// GetDemandByHour возвращает спрос по зонам посадки за час суток
	GetDemandByHour(ctx context.Context, hour int) ([]domain.DemandCell, error)

	// GetTipTrends возвращает тренды чаевых по всем зонам
	GetTipTrends(ctx context.Context) ([]domain.TipTrend, error)

	// GetZoneTipValues возвращает проценты чаевых зоны по способам оплаты
	GetZoneTipValues(ctx context.Context, zoneID int) ([]float64, error)

	// GetFareAnomalies возвращает поездки с аномальной стоимостью
	GetFareAnomalies(ctx context.Context) ([]domain.FareAnomaly, error)

	// GetTripPerformance возвращает агрегаты качества поездок зоны
	GetTripPerformance(ctx context.Context, zoneID int, filter domain.PerformanceFilter) ([]domain.TripPerformance, error)

	// GetPopularRoutes возвращает популярные направления из зоны
	GetPopularRoutes(ctx context.Context, zoneID int, filter domain.RouteFilter) ([]domain.PopularRoute, error)

	// GetPaymentAnalysis возвращает разбивку оплат по зоне
	GetPaymentAnalysis(ctx context.Context, zoneID int, filter domain.PaymentFilter) ([]domain.PaymentBreakdown, error)
}
