package repository

import (
	"context"

	"github.com/taxi-analytics-microservice/internal/domain"
)

// DebugRepository интерфейс живой интроспекции хранилища
type DebugRepository interface {
	// GetTableColumns возвращает колонки таблицы из information_schema
	GetTableColumns(ctx context.Context, table string) ([]domain.TableColumn, error)

	// GetZoneCoverage возвращает отсортированные уникальные зоны посадки
	// по таблицам, ключ - имя таблицы
	GetZoneCoverage(ctx context.Context) (map[string][]int, error)

	// CountAllRows возвращает число строк каждой таблицы агрегатов
	CountAllRows(ctx context.Context) (map[string]int64, error)
}
