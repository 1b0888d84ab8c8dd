package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pkgz/lgr"
)

// Logger writes one access line per request, and the handler errors if any.
func Logger(l lgr.L) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		format := "INFO %s %s %d %s [%s]"
		if status >= 500 {
			format = "ERROR %s %s %d %s [%s]"
		}
		l.Logf(format, c.Request.Method, c.Request.URL.Path, status,
			time.Since(start).Round(time.Microsecond), c.GetString(RequestIDKey))
		for _, e := range c.Errors {
			l.Logf("ERROR %s %s [%s], %v", c.Request.Method, c.Request.URL.Path, c.GetString(RequestIDKey), e.Err)
		}
	}
}
