package middleware

import (
	"strconv"
	"time"

	"blogapi/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency labelled by route template, so
// /user/1 and /user/2 share a series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), start)
	}
}
