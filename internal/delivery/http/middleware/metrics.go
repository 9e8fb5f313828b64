package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/taxi-analytics-microservice/internal/pkg/metrics"
)

// Metrics - middleware наблюдения HTTP-запросов. Метка path берётся из
// шаблона маршрута, чтобы не раздувать кардинальность значениями zone_id
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		method := c.Method()

		metrics.HTTPRequestsTotal.WithLabelValues(
			method, path, strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).
			Observe(time.Since(start).Seconds())

		return err
	}
}
