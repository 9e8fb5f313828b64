package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/domain"
	pkgerrors "github.com/taxi-analytics-microservice/internal/pkg/errors"
	"github.com/taxi-analytics-microservice/internal/pkg/utils"
	"github.com/taxi-analytics-microservice/internal/pkg/validator"
	"github.com/taxi-analytics-microservice/internal/usecase"
	"github.com/taxi-analytics-microservice/internal/usecase/dto"
)

// AnalyticsHandler - обработчик аналитических запросов
type AnalyticsHandler struct {
	analyticsUC *usecase.AnalyticsUseCase
	logger      *zap.Logger
}

// NewAnalyticsHandler - создание нового AnalyticsHandler
func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUseCase, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: analyticsUC,
		logger:      logger,
	}
}

// GetDemand godoc
// @Summary Тепловая карта спроса за час суток
// @Description Возвращает число поездок по зонам посадки за указанный час (0-23)
// @Tags Analytics
// @Produce json
// @Param hour query int true "Час суток (0-23)"
// @Success 200 {array} domain.DemandCell
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/demand [get]
func (h *AnalyticsHandler) GetDemand(c *fiber.Ctx) error {
	hourStr := c.Query("hour")
	if hourStr == "" {
		return utils.SendError(c, pkgerrors.ErrInvalidHour)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return utils.SendError(c, pkgerrors.ErrInvalidHour)
	}

	req := dto.DemandRequest{Hour: hour}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, pkgerrors.ErrInvalidHour)
	}

	cells, err := h.analyticsUC.GetDemand(c.Context(), req.Hour)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(cells)
}

// GetTipTrends godoc
// @Summary Тренды чаевых по зонам
// @Description Возвращает средний процент чаевых по зонам посадки и способам оплаты
// @Tags Analytics
// @Produce json
// @Success 200 {array} domain.TipTrend
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tips [get]
func (h *AnalyticsHandler) GetTipTrends(c *fiber.Ctx) error {
	trends, err := h.analyticsUC.GetTipTrends(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(trends)
}

// GetZoneTipAverage godoc
// @Summary Средний процент чаевых по зоне
// @Description Возвращает невзвешенное среднее процента чаевых по способам оплаты для зоны
// @Tags Analytics
// @Produce json
// @Param zone_id path int true "Идентификатор зоны посадки"
// @Success 200 {object} domain.ZoneTipSummary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tips/{zone_id} [get]
func (h *AnalyticsHandler) GetZoneTipAverage(c *fiber.Ctx) error {
	zoneID, err := parseZoneID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	summary, err := h.analyticsUC.GetZoneTipAverage(c.Context(), zoneID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(summary)
}

// GetFareAnomalies godoc
// @Summary Аномальные поездки
// @Description Возвращает до 100 поездок с наибольшей стоимостью по убыванию
// @Tags Analytics
// @Produce json
// @Success 200 {array} domain.FareAnomaly
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/anomalies [get]
func (h *AnalyticsHandler) GetFareAnomalies(c *fiber.Ctx) error {
	anomalies, err := h.analyticsUC.GetFareAnomalies(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(anomalies)
}

// GetTripPerformance godoc
// @Summary Агрегаты качества поездок зоны
// @Description Возвращает агрегаты длительности, скорости и выручки поездок из зоны. Фильтры объединяются по И
// @Tags Analytics
// @Produce json
// @Param zone_id path int true "Идентификатор зоны посадки"
// @Param hour query int false "Час суток (0-23)"
// @Param is_weekend query bool false "Только выходные или только будни"
// @Success 200 {array} domain.TripPerformance
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/trip-performance/{zone_id} [get]
func (h *AnalyticsHandler) GetTripPerformance(c *fiber.Ctx) error {
	zoneID, err := parseZoneID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	hour, err := parseOptionalHour(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var isWeekend *bool
	if raw := c.Query("is_weekend"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.SendError(c, pkgerrors.ErrInvalidRequest)
		}
		isWeekend = &v
	}

	filter := domain.PerformanceFilter{Hour: hour, IsWeekend: isWeekend}
	perf, err := h.analyticsUC.GetTripPerformance(c.Context(), zoneID, filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(perf)
}

// GetPopularRoutes godoc
// @Summary Популярные направления из зоны
// @Description Возвращает направления из зоны по убыванию числа поездок
// @Tags Analytics
// @Produce json
// @Param zone_id path int true "Идентификатор зоны посадки"
// @Param hour query int false "Час суток (0-23)"
// @Param limit query int false "Максимальное число направлений" default(10)
// @Success 200 {array} domain.PopularRoute
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/popular-routes/{zone_id} [get]
func (h *AnalyticsHandler) GetPopularRoutes(c *fiber.Ctx) error {
	zoneID, err := parseZoneID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	hour, err := parseOptionalHour(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var limit int
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return utils.SendError(c, pkgerrors.ErrInvalidRequest)
		}
	}

	filter := domain.RouteFilter{Hour: hour, Limit: limit}
	routes, err := h.analyticsUC.GetPopularRoutes(c.Context(), zoneID, filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(routes)
}

// GetPaymentAnalysis godoc
// @Summary Разбивка оплат по зоне
// @Description Возвращает агрегаты по способам оплаты для зоны посадки
// @Tags Analytics
// @Produce json
// @Param zone_id path int true "Идентификатор зоны посадки"
// @Param hour query int false "Час суток (0-23)"
// @Success 200 {array} domain.PaymentBreakdown
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/payment-analysis/{zone_id} [get]
func (h *AnalyticsHandler) GetPaymentAnalysis(c *fiber.Ctx) error {
	zoneID, err := parseZoneID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	hour, err := parseOptionalHour(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	filter := domain.PaymentFilter{Hour: hour}
	breakdown, err := h.analyticsUC.GetPaymentAnalysis(c.Context(), zoneID, filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(breakdown)
}

// parseZoneID читает и проверяет path-параметр zone_id
func parseZoneID(c *fiber.Ctx) (int, error) {
	zoneID, err := c.ParamsInt("zone_id")
	if err != nil {
		return 0, pkgerrors.ErrInvalidZoneID
	}

	req := dto.ZoneRequest{ZoneID: zoneID}
	if err := validator.Validate(&req); err != nil {
		return 0, pkgerrors.ErrInvalidZoneID
	}
	return zoneID, nil
}

// parseOptionalHour читает необязательный query-параметр hour
func parseOptionalHour(c *fiber.Ctx) (*int, error) {
	raw := c.Query("hour")
	if raw == "" {
		return nil, nil
	}

	hour, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.ErrInvalidHour
	}

	req := dto.DemandRequest{Hour: hour}
	if err := validator.Validate(&req); err != nil {
		return nil, pkgerrors.ErrInvalidHour
	}
	return &hour, nil
}
