package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"menu-recommendation/internal/infrastructure/metrics"
)

// Metrics 요청 수와 지연 기록. 등록되지 않은 경로는 "unmatched"
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
