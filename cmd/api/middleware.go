package main

import (
	"time"

	"powdercast/internal/metrics"

	"github.com/gin-gonic/gin"
)

// requestMetrics records request counts and latencies per route template.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
