package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roninc32/smart-portfolio/internal/ratelimit"
	"github.com/roninc32/smart-portfolio/internal/transport/http/response"
)

const rateLimitedMessage = "Whoa there! 🐎 Too many messages. Please wait a minute before trying again."

// RateLimit gates a route on the network-level client key. It runs
// before the body is read: malformed requests still charge the budget,
// but unauthenticated body parsing never becomes the cost sink.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c.Request)
		if !limiter.Allow(c.Request.Context(), key) {
			response.Error(c, http.StatusTooManyRequests, rateLimitedMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}

// clientKey identifies the caller: first hop of X-Forwarded-For when a
// proxy sits in front, otherwise the socket address.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "unknown"
	}
	return host
}
