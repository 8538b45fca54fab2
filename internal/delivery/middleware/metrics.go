package middleware

import (
	"time"

	"orgs/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	skipPath string
}

// NewMetricsMiddleware creates the middleware; requests to skipPath (the
// scrape endpoint) are not recorded.
func NewMetricsMiddleware(skipPath string) *MetricsMiddleware {
	return &MetricsMiddleware{skipPath: skipPath}
}

// Handle records the request after the handler chain returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == m.skipPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		metrics.RecordHTTPRequest(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))

		return nil
	}
}
