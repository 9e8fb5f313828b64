package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New("SOME_CODE", "something happened", http.StatusTeapot)
	assert.Equal(t, "SOME_CODE: something happened", err.Error())
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name    string
		err     *AppError
		code    string
		message string
		status  int
	}{
		{"demand", ErrDemandNotFound, "DEMAND_NOT_FOUND", "No data found for this hour", http.StatusNotFound},
		{"tips", ErrTipDataNotFound, "TIP_DATA_NOT_FOUND", "No tip data found", http.StatusNotFound},
		{"zone tips", ErrZoneTipNotFound, "ZONE_TIP_NOT_FOUND", "No tip data found for this zone", http.StatusNotFound},
		{"anomalies", ErrAnomalyDataNotFound, "ANOMALY_DATA_NOT_FOUND", "No anomaly data found", http.StatusNotFound},
		{"performance", ErrPerformanceNotFound, "PERFORMANCE_DATA_NOT_FOUND", "No trip performance data found for this zone", http.StatusNotFound},
		{"routes", ErrRouteDataNotFound, "ROUTE_DATA_NOT_FOUND", "No route data found for this zone", http.StatusNotFound},
		{"payments", ErrPaymentDataNotFound, "PAYMENT_DATA_NOT_FOUND", "No payment data found for this zone", http.StatusNotFound},
		{"hour", ErrInvalidHour, "INVALID_HOUR", "Invalid hour: must be between 0 and 23", http.StatusBadRequest},
		{"zone id", ErrInvalidZoneID, "INVALID_ZONE_ID", "Invalid zone ID", http.StatusBadRequest},
		{"table", ErrUnknownTable, "UNKNOWN_TABLE", "Unknown table requested", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.status, tt.err.StatusCode)
		})
	}
}

func TestDatabase(t *testing.T) {
	err := Database(errors.New("connection reset by peer"))

	assert.Equal(t, "DATABASE_ERROR", err.Code)
	assert.Equal(t, "connection reset by peer", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestInternal(t *testing.T) {
	err := Internal(errors.New("boom"))

	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, "boom", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestZonesFileNotFound(t *testing.T) {
	probed := []string{"frontend/public/taxi_zones.geojson", "/app/frontend/public/taxi_zones.geojson"}

	err := ZonesFileNotFound(probed)

	assert.Equal(t, "ZONES_FILE_NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, probed, err.Details["probed_paths"])

	// Каждый вызов возвращает новый экземпляр, общий sentinel не мутируется
	require.NotSame(t, ErrZonesFileNotFound, err)
	assert.Empty(t, ErrZonesFileNotFound.Details)
}
