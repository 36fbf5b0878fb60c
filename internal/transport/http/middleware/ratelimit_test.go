package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	allow   bool
	gotKeys []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) bool {
	s.gotKeys = append(s.gotKeys, key)
	return s.allow
}

func TestClientKeyPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.RemoteAddr = "10.0.0.1:4444"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "203.0.113.7", clientKey(req))
}

func TestClientKeyFallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.RemoteAddr = "198.51.100.2:5555"

	assert.Equal(t, "198.51.100.2", clientKey(req))
}

func TestRateLimitDeniedShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := &stubLimiter{allow: false}

	router := gin.New()
	handlerRan := false
	router.POST("/api/chat", RateLimit(limiter), func(c *gin.Context) {
		handlerRan = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.RemoteAddr = "198.51.100.2:5555"
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.False(t, handlerRan, "denied request must not reach the handler")
	assert.Equal(t, []string{"198.51.100.2"}, limiter.gotKeys)
}

func TestRateLimitAllowedPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := &stubLimiter{allow: true}

	router := gin.New()
	router.POST("/api/chat", RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.RemoteAddr = "198.51.100.2:5555"
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}
