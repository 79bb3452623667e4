package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rest-user-service/internal/adapter/gin/handler"
	"rest-user-service/internal/adapter/gin/middleware"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	rootHandler *handler.RootHandler,
	userHandler *handler.UserHandler,
	redisClient *redis.Client,
	rateLimit middleware.RateLimiterConfig,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(redisClient, rateLimit, log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "rest-user-service",
		})
	})

	router.GET("/", rootHandler.Greeting)

	users := router.Group("/user")
	{
		users.GET("/", userHandler.ListUsers)
		users.POST("/", userHandler.CreateUser)
		users.GET("/:id/", userHandler.GetUser)
		users.DELETE("/:id/", userHandler.DeleteUser)
	}

	return router
}
