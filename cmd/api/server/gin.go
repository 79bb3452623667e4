package server

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rest-user-service/cmd/api/di"
	"rest-user-service/internal/adapter/gin/middleware"
	ginrouter "rest-user-service/internal/adapter/gin/router"
	"rest-user-service/internal/config"
)

// SetupHTTPServer creates and configures the Gin REST API server
func SetupHTTPServer(cfg *config.Config, l *zap.Logger, c *di.Container) *http.Server {
	var redisClient *redis.Client
	if c.RedisClient != nil {
		redisClient = c.RedisClient.Client
	}

	router := ginrouter.SetupRouter(
		c.RootHandler,
		c.UserHandler,
		redisClient,
		middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
		l,
	)

	addr := ":" + cfg.App.HTTPPort
	l.Info("REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
