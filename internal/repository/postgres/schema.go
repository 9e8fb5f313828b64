package postgres

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	TableDemandHeatmap   = "demand_heatmap"
	TableTipTrends       = "tip_trends"
	TableFareAnomalies   = "fare_anomalies"
	TableTripPerformance = "trip_performance"
	TablePopularRoutes   = "popular_routes"
	TablePaymentAnalysis = "payment_analysis"
)

// Column колонка таблицы агрегатов. Key помечает логический ключ строки;
// в DDL он не транслируется - целостность обеспечивает загрузчик датасета
type Column struct {
	Name string
	Type string
	Key  bool
}

// Table описание таблицы агрегатов: имя и упорядоченный список колонок
type Table struct {
	Name    string
	Columns []Column
}

var tables = []Table{
	{
		Name: TableDemandHeatmap,
		Columns: []Column{
			{Name: "PULocationID", Type: "integer", Key: true},
			{Name: "pickup_hour", Type: "integer", Key: true},
			{Name: "n_trips", Type: "bigint"},
		},
	},
	{
		Name: TableTipTrends,
		Columns: []Column{
			{Name: "PULocationID", Type: "integer", Key: true},
			{Name: "payment_type", Type: "bigint", Key: true},
			{Name: "avg_tip_pct", Type: "double precision"},
			{Name: "n_trips", Type: "bigint"},
		},
	},
	{
		Name: TableFareAnomalies,
		Columns: []Column{
			{Name: "VendorID", Type: "integer"},
			{Name: "tpep_pickup_datetime", Type: "timestamp"},
			{Name: "PULocationID", Type: "integer"},
			{Name: "DOLocationID", Type: "integer"},
			{Name: "fare_amount", Type: "double precision"},
			{Name: "tip_amount", Type: "double precision"},
			{Name: "trip_distance", Type: "double precision"},
		},
	},
	{
		Name: TableTripPerformance,
		Columns: []Column{
			{Name: "PULocationID", Type: "integer", Key: true},
			{Name: "pickup_hour", Type: "integer", Key: true},
			{Name: "pickup_dow", Type: "integer", Key: true},
			{Name: "is_weekend", Type: "boolean"},
			{Name: "avg_duration", Type: "double precision"},
			{Name: "avg_speed", Type: "double precision"},
			{Name: "avg_fare", Type: "double precision"},
			{Name: "avg_distance", Type: "double precision"},
			{Name: "avg_tip", Type: "double precision"},
			{Name: "total_revenue", Type: "double precision"},
			{Name: "n_trips", Type: "bigint"},
		},
	},
	{
		Name: TablePopularRoutes,
		Columns: []Column{
			{Name: "PULocationID", Type: "integer", Key: true},
			{Name: "DOLocationID", Type: "integer", Key: true},
			{Name: "pickup_hour", Type: "integer", Key: true},
			{Name: "n_trips", Type: "bigint"},
			{Name: "avg_duration", Type: "double precision"},
			{Name: "avg_fare", Type: "double precision"},
			{Name: "avg_distance", Type: "double precision"},
			{Name: "avg_tip", Type: "double precision"},
		},
	},
	{
		Name: TablePaymentAnalysis,
		Columns: []Column{
			{Name: "PULocationID", Type: "integer", Key: true},
			{Name: "pickup_hour", Type: "integer", Key: true},
			{Name: "payment_type", Type: "bigint", Key: true},
			{Name: "payment_method", Type: "text"},
			{Name: "n_trips", Type: "bigint"},
			{Name: "avg_fare", Type: "double precision"},
			{Name: "avg_tip", Type: "double precision"},
			{Name: "avg_tip_percentage", Type: "double precision"},
			{Name: "total_revenue", Type: "double precision"},
		},
	},
}

// Tables возвращает описания таблиц агрегатов в порядке объявления
func Tables() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// LookupTable возвращает описание таблицы по имени
func LookupTable(name string) (Table, bool) {
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// HasColumn проверяет наличие колонки в описании таблицы
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// CreateStatement генерирует идемпотентный DDL без ограничений целостности
func (t Table) CreateStatement() string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = fmt.Sprintf("%s %s", quoteIdent(c.Name), c.Type)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.Name, strings.Join(cols, ", "))
}

// quoteIdent экранирует идентификатор: колонки исходного датасета хранят
// смешанный регистр (PULocationID), без кавычек Postgres свернёт его в нижний
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// EnsureSchema создаёт отсутствующие таблицы агрегатов; существующие
// не изменяются и не проверяются
func EnsureSchema(ctx context.Context, db *DB) error {
	for _, t := range tables {
		if _, err := db.ExecContext(ctx, t.CreateStatement()); err != nil {
			return fmt.Errorf("failed to ensure table %s: %w", t.Name, err)
		}
	}

	db.logger.Info("Schema ensured", zap.Int("tables", len(tables)))
	return nil
}
