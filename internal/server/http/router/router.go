package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/cleanup/internal/metrics"
	"github.com/polkiloo/cleanup/internal/server/http/handlers"
	"github.com/polkiloo/cleanup/internal/server/http/middleware"
	"github.com/polkiloo/cleanup/internal/server/ws"
)

const (
	notificationStreamPath = "/api/notifications/ws"
	metricsPath            = "/metrics"
	healthPath             = "/healthz"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.SessionFacade, hub *ws.Hub, checker handlers.HealthChecker, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{notificationStreamPath, metricsPath, healthPath})))

	orderHandler := handlers.NewOrderHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	healthHandler := handlers.NewHealthHandler(checker)

	api := engine.Group("/api")
	api.GET("/services", catalogHandler.Services)
	api.GET("/quote", catalogHandler.Quote)

	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)
	api.GET("/orders/:id", orderHandler.Get)
	api.POST("/orders/:id/advance", orderHandler.Advance)
	api.POST("/orders/:id/rating", orderHandler.Rate)
	api.GET("/tracking", orderHandler.Tracking)

	api.GET("/notifications", notificationHandler.List)
	api.DELETE("/notifications", notificationHandler.Clear)
	engine.GET(notificationStreamPath, hub.ServeWS)

	engine.GET(metricsPath, gin.WrapH(m.Handler()))
	engine.GET(healthPath, healthHandler.Check)

	return engine
}
