package errors

import "net/http"

var (
	ErrDemandNotFound = New(
		"DEMAND_NOT_FOUND",
		"No data found for this hour",
		http.StatusNotFound,
	)

	ErrTipDataNotFound = New(
		"TIP_DATA_NOT_FOUND",
		"No tip data found",
		http.StatusNotFound,
	)

	ErrZoneTipNotFound = New(
		"ZONE_TIP_NOT_FOUND",
		"No tip data found for this zone",
		http.StatusNotFound,
	)

	ErrAnomalyDataNotFound = New(
		"ANOMALY_DATA_NOT_FOUND",
		"No anomaly data found",
		http.StatusNotFound,
	)

	ErrPerformanceNotFound = New(
		"PERFORMANCE_DATA_NOT_FOUND",
		"No trip performance data found for this zone",
		http.StatusNotFound,
	)

	ErrRouteDataNotFound = New(
		"ROUTE_DATA_NOT_FOUND",
		"No route data found for this zone",
		http.StatusNotFound,
	)

	ErrPaymentDataNotFound = New(
		"PAYMENT_DATA_NOT_FOUND",
		"No payment data found for this zone",
		http.StatusNotFound,
	)

	ErrZonesFileNotFound = New(
		"ZONES_FILE_NOT_FOUND",
		"Taxi zones file not found",
		http.StatusNotFound,
	)

	ErrInvalidHour = New(
		"INVALID_HOUR",
		"Invalid hour: must be between 0 and 23",
		http.StatusBadRequest,
	)

	ErrInvalidZoneID = New(
		"INVALID_ZONE_ID",
		"Invalid zone ID",
		http.StatusBadRequest,
	)

	ErrUnknownTable = New(
		"UNKNOWN_TABLE",
		"Unknown table requested",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// ZonesFileNotFound возвращает 404 по файлу зон с перечнем проверенных путей
func ZonesFileNotFound(probed []string) *AppError {
	return New("ZONES_FILE_NOT_FOUND", "Taxi zones file not found", http.StatusNotFound).
		WithDetails(map[string]interface{}{"probed_paths": probed})
}

// Database оборачивает ошибку хранилища, сохраняя исходное сообщение в ответе
func Database(err error) *AppError {
	return New("DATABASE_ERROR", err.Error(), http.StatusInternalServerError)
}

// Internal оборачивает непредвиденную ошибку, сохраняя исходное сообщение
func Internal(err error) *AppError {
	return New("INTERNAL_SERVER_ERROR", err.Error(), http.StatusInternalServerError)
}
