// internal/middleware/recovery_middleware.go
package middleware

import (
	"net/http"

	"impactlink-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware recovers from handler panics and returns a clean 500.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				response.Error(c, http.StatusInternalServerError, "internal server error", nil)
			}
		}()
		c.Next()
	}
}
