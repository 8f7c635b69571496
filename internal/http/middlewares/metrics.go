package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/metrics"
)

// Metrics counts requests by route template. It must wrap AccessLog so the
// status is final when it is read.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

			return err
		}
	}
}
