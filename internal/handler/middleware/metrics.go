package middleware

import (
	"strconv"
	"time"

	"transfer-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency by matched route template, so
// session ids in paths do not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
