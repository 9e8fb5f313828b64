package domain

import "time"

const (
	TableDemandHeatmap   = "demand_heatmap"
	TableTipTrends       = "tip_trends"
	TableFareAnomalies   = "fare_anomalies"
	TableTripPerformance = "trip_performance"
	TablePopularRoutes   = "popular_routes"
	TablePaymentAnalysis = "payment_analysis"
)

// AggregateTables имена таблиц агрегатов в порядке объявления схемы
var AggregateTables = []string{
	TableDemandHeatmap,
	TableTipTrends,
	TableFareAnomalies,
	TableTripPerformance,
	TablePopularRoutes,
	TablePaymentAnalysis,
}

// TableColumn колонка таблицы по данным живой интроспекции схемы
type TableColumn struct {
	Name string `json:"name" db:"column_name"`
	Type string `json:"type" db:"data_type"`
}

// DatasetStats сводные счётчики строк по таблицам датасета
type DatasetStats struct {
	Tables      map[string]int64 `json:"tables"`
	GeneratedAt time.Time        `json:"generated_at"`
}
