package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/pkg/utils"
	"github.com/taxi-analytics-microservice/internal/usecase"
)

// DebugHandler - обработчик диагностических запросов к хранилищу
type DebugHandler struct {
	debugUC *usecase.DebugUseCase
	logger  *zap.Logger
}

// NewDebugHandler - создание нового DebugHandler
func NewDebugHandler(debugUC *usecase.DebugUseCase, logger *zap.Logger) *DebugHandler {
	return &DebugHandler{
		debugUC: debugUC,
		logger:  logger,
	}
}

// GetSchema godoc
// @Summary Живая схема таблиц агрегатов
// @Description Возвращает колонки и типы таблиц по данным information_schema
// @Tags Debug
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/debug/schema [get]
func (h *DebugHandler) GetSchema(c *fiber.Ctx) error {
	schema, err := h.debugUC.GetSchema(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(schema)
}

// GetLocations godoc
// @Summary Покрытие зон посадки по таблицам
// @Description Возвращает отсортированные уникальные зоны посадки для каждой таблицы
// @Tags Debug
// @Produce json
// @Success 200 {object} map[string][]int
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/debug/locations [get]
func (h *DebugHandler) GetLocations(c *fiber.Ctx) error {
	coverage, err := h.debugUC.GetLocationCoverage(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(coverage)
}
