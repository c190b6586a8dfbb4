package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bookstore-api/pkg/logger"
)

// RequestLogger logs one line per handled request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("http request", map[string]interface{}{
			"request_id": c.GetString(CtxRequestID),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}
