package middleware

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger carrying the request id
// and (when authenticated) the user id. Must run after RequestID and
// AuthMiddleware so both values are already set.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLogger := logger.With(
			zap.String("request_id", c.GetString("request_id")),
			zap.String("user_id", c.GetString("user_id")),
		)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
