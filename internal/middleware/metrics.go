package middleware

import (
	"strconv"
	"time"

	"github.com/XXQ0321/charity-events/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request counts and latency per route template, so path
// parameters do not explode label cardinality.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.RequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
