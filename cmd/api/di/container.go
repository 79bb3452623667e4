package di

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rest-user-service/cmd/api/infrastructure"
	dbadapter "rest-user-service/internal/adapter/db/gormdb"
	ginhandler "rest-user-service/internal/adapter/gin/handler"
	"rest-user-service/internal/config"
	"rest-user-service/internal/usecase/user"
	redisclient "rest-user-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client // nil when rate limiting is disabled
	UserUC      user.Usecase
	RootHandler *ginhandler.RootHandler
	UserHandler *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis only backs the rate limiter, so the connection is optional
	var rdb *redisclient.Client
	if cfg.RateLimit.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
	}

	repo := dbadapter.NewUserRepo(db, l)
	userUC := user.New(repo, l, cfg.App.EmailDomain)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		UserUC:      userUC,
		RootHandler: ginhandler.NewRootHandler(),
		UserHandler: ginhandler.NewUserHandler(userUC, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
