package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roomcheck/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newRouter(RateLimitMiddleware(2))

	a := map[string]string{"X-Forwarded-For": "10.0.0.1"}
	assert.Equal(t, http.StatusOK, get(r, a).Code)
	assert.Equal(t, http.StatusOK, get(r, a).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, a).Code)

	// Other clients have their own bucket.
	assert.Equal(t, http.StatusOK, get(r, map[string]string{"X-Forwarded-For": "10.0.0.2"}).Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	var seen *zap.Logger
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		if l, ok := c.Get(utils.LoggerKey); ok {
			seen, _ = l.(*zap.Logger)
		}
		c.Status(http.StatusOK)
	})

	w := get(r, nil)
	assert.NotEmpty(t, w.Header().Get(utils.RequestIDHeader))
	assert.NotNil(t, seen)

	w = get(r, map[string]string{utils.RequestIDHeader: "req-123"})
	assert.Equal(t, "req-123", w.Header().Get(utils.RequestIDHeader))
}

func TestAdminTokenMiddleware(t *testing.T) {
	r := newRouter(AdminTokenMiddleware("s3cret"))
	assert.Equal(t, http.StatusUnauthorized, get(r, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, map[string]string{"Authorization": "Bearer nope"}).Code)
	assert.Equal(t, http.StatusOK, get(r, map[string]string{"Authorization": "Bearer s3cret"}).Code)

	disabled := newRouter(AdminTokenMiddleware(""))
	assert.Equal(t, http.StatusUnauthorized, get(disabled, map[string]string{"Authorization": "Bearer "}).Code)
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "9.9.9.9:1234", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": " 5.6.7.8 "}, "9.9.9.9:1234", "5.6.7.8"},
		{"remote addr", nil, "9.9.9.9:1234", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.header {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}
