package middlewares

import (
	"strconv"
	"time"

	"github.com/bdpublic/updates-api/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency under the matched route, so
// unknown paths collapse into one "unmatched" series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
