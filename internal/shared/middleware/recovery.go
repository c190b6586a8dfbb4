package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

// Recovery converts a panic into a logged generic 500. The panic value
// never reaches the client.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", fmt.Errorf("%v", rec))
				response.Internal(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}
