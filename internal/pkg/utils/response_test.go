package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/taxi-analytics-microservice/internal/pkg/errors"
)

func sendThroughApp(t *testing.T, err error) (*http.Response, ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SendError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var envelope ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp, envelope
}

func TestSendError(t *testing.T) {
	t.Run("app error keeps its status and envelope", func(t *testing.T) {
		resp, envelope := sendThroughApp(t, pkgerrors.ErrDemandNotFound)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "DEMAND_NOT_FOUND", envelope.Error.Code)
		assert.Equal(t, "No data found for this hour", envelope.Error.Message)
	})

	t.Run("unknown error maps to 500 keeping the message", func(t *testing.T) {
		resp, envelope := sendThroughApp(t, errors.New("connection reset by peer"))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", envelope.Error.Code)
		assert.Equal(t, "connection reset by peer", envelope.Error.Message)
	})

	t.Run("details travel with the envelope", func(t *testing.T) {
		appErr := pkgerrors.ZonesFileNotFound([]string{"frontend/public/taxi_zones.geojson"})

		resp, envelope := sendThroughApp(t, appErr)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Contains(t, envelope.Error.Details, "probed_paths")
	})
}
