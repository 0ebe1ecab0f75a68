package middleware

import (
	"strconv"
	"time"

	"dream-diary-api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 記錄每個請求的次數與耗時
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// 用路由樣板而不是實際路徑，避免 user_id / uuid 讓 label 爆量
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
