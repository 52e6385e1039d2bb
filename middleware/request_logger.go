package middleware

import (
	"time"

	"roomcheck/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags each request with an id, stores a child logger in the
// gin context under utils.LoggerKey and logs the outcome.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(utils.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(utils.RequestIDHeader, requestID)

		logger := base.With(zap.String("requestId", requestID))
		c.Set(utils.LoggerKey, logger)

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", getClientIP(c)))
	}
}
