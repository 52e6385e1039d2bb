package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// withRequestLogger mimics the request logger middleware for one fixed id.
func withRequestLogger(logger *zap.Logger, requestID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(RequestIDHeader, requestID)
		c.Set(LoggerKey, logger.With(zap.String("requestId", requestID)))
		c.Next()
	}
}

func TestErrorHandler_RecoversWithRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)

	r := gin.New()
	r.Use(withRequestLogger(zap.New(core), "req-42"), ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body.Error)
	assert.Equal(t, "req-42", body.RequestID)

	entries := logs.FilterMessage("recovered from panic").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["requestId"])
	assert.Equal(t, "kaboom", fields["panic"])
	assert.Equal(t, "/boom", fields["path"])
}

func TestJSONError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)

	r := gin.New()
	r.Use(withRequestLogger(zap.New(core), "req-7"))
	r.GET("/fail", func(c *gin.Context) {
		JSONError(c, http.StatusServiceUnavailable, "store_down", "Try again later")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Error: "store_down", Message: "Try again later", RequestID: "req-7"}, body)
	assert.Equal(t, 1, logs.FilterField(zap.String("requestId", "req-7")).Len())
}

func TestLoggerFrom_FallsBackToGlobal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, zap.L(), LoggerFrom(c))

	scoped := zap.NewNop()
	c.Set(LoggerKey, scoped)
	assert.Same(t, scoped, LoggerFrom(c))
}
