package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/domain"
	"github.com/taxi-analytics-microservice/internal/domain/repository"
)

// DebugUseCase обрабатывает диагностические запросы к хранилищу
type DebugUseCase struct {
	debugRepo repository.DebugRepository
	logger    *zap.Logger
}

// NewDebugUseCase создает новый экземпляр DebugUseCase
func NewDebugUseCase(debugRepo repository.DebugRepository, logger *zap.Logger) *DebugUseCase {
	return &DebugUseCase{
		debugRepo: debugRepo,
		logger:    logger,
	}
}

// GetSchema возвращает живую схему таблиц агрегатов из information_schema.
// Сбой интроспекции одной таблицы не прерывает обход: вместо колонок
// записывается текст ошибки
func (uc *DebugUseCase) GetSchema(ctx context.Context) (map[string]interface{}, error) {
	schema := make(map[string]interface{}, len(domain.AggregateTables))

	for _, table := range domain.AggregateTables {
		columns, err := uc.debugRepo.GetTableColumns(ctx, table)
		if err != nil {
			uc.logger.Warn("Failed to inspect table schema",
				zap.String("table", table),
				zap.Error(err),
			)
			schema[table] = fmt.Sprintf("Error: %s", err.Error())
			continue
		}

		cols := make(map[string]string, len(columns))
		for _, col := range columns {
			cols[col.Name] = col.Type
		}
		schema[table] = cols
	}

	return schema, nil
}

// GetLocationCoverage возвращает уникальные зоны посадки по таблицам,
// ключ в ответе - <таблица>_locations
func (uc *DebugUseCase) GetLocationCoverage(ctx context.Context) (map[string][]int, error) {
	coverage, err := uc.debugRepo.GetZoneCoverage(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]int, len(coverage))
	for table, zones := range coverage {
		out[fmt.Sprintf("%s_locations", table)] = zones
	}
	return out, nil
}
