package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-verdict error reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// ErrorHandler turns a panic further down the chain into a 500 reply. The
// panic is logged through the request-scoped logger, so it carries the request id.
// It must run after RequestLogger.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			LoggerFrom(c).Error("recovered from panic",
				zap.Any("panic", rec),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Stack("stack"))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Error:     "internal_error",
				Message:   "An unexpected error occurred. Please try again later.",
				RequestID: c.Writer.Header().Get(RequestIDHeader),
			})
		}()
		c.Next()
	}
}

// JSONError replies with an ErrorResponse. code is a stable machine-readable
// token; message is shown to clients.
func JSONError(c *gin.Context, status int, code, message string) {
	LoggerFrom(c).Warn("request failed",
		zap.Int("status", status),
		zap.String("error", code))
	c.JSON(status, ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: c.Writer.Header().Get(RequestIDHeader),
	})
}
