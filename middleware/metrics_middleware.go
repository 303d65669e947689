package middleware

import (
	"strconv"
	"time"

	"extstats/utils/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request duration per registered route. The
// route pattern (c.Path) is used instead of the raw URL so that
// /v1/extensions/:id stays one label value.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.HTTPRequestDuration.WithLabelValues(
				route,
				c.Request().Method,
				strconv.Itoa(c.Response().Status),
			).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
