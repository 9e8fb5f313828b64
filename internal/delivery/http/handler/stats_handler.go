package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/pkg/utils"
	"github.com/taxi-analytics-microservice/internal/usecase"
)

// StatsHandler обрабатывает запросы сводки датасета
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetDatasetStats godoc
// @Summary Сводка датасета
// @Description Возвращает число строк каждой таблицы агрегатов; результат кешируется
// @Tags Statistics
// @Produce json
// @Success 200 {object} domain.DatasetStats
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) GetDatasetStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetDatasetStats(c.Context())
	if err != nil {
		h.logger.Error("Failed to get dataset stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(stats)
}
