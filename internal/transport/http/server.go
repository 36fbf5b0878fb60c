package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "github.com/roninc32/smart-portfolio/internal/app"
	"github.com/roninc32/smart-portfolio/internal/bootstrap"
	"github.com/roninc32/smart-portfolio/internal/transport/http/handler"
	"github.com/roninc32/smart-portfolio/internal/transport/http/middleware"
	"github.com/roninc32/smart-portfolio/internal/transport/http/response"
)

// Deployment-platform suffixes whose origins are always admitted, so
// preview deployments work without config churn.
var allowedOriginSuffixes = []string{".vercel.app", ".koyeb.app"}

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	router.Use(cors.New(corsConfig(app.Config.CORS.ClientURL)))

	chatService := appsvc.NewChatService(app.History, app.Completer)
	chatHandler := handler.NewChatHandler(chatService)
	healthHandler := handler.NewHealthHandler(app)

	api := router.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/chat", middleware.RateLimit(app.Limiter), chatHandler.Send)
	api.GET("/chat/history/:sessionId", chatHandler.History)

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Endpoint not found")
	})

	return router
}

func corsConfig(clientURL string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", middleware.RequestIDHeader}
	cfg.AllowCredentials = true
	cfg.AllowOriginFunc = func(origin string) bool {
		return originAllowed(origin, clientURL)
	}
	return cfg
}

// originAllowed admits the configured client origin(s), anything on
// localhost, and the deployment platform's own domains.
func originAllowed(origin, clientURL string) bool {
	for _, allowed := range strings.Split(clientURL, ",") {
		if allowed = strings.TrimSpace(allowed); allowed != "" && origin == allowed {
			return true
		}
	}

	host := origin
	if idx := strings.Index(host, "://"); idx >= 0 {
		host = host[idx+3:]
	}
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	for _, suffix := range allowedOriginSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}
