package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-admin/pkg/metrics"
)

// Metrics HTTP请求指标
// path取路由模板（/books/:id），避免标签基数随ID增长
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.HTTPRequestsInProgress.Inc()
		defer metrics.HTTPRequestsInProgress.Dec()

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
