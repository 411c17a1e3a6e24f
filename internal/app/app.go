package app

import (
	"go-solicitudes/internal/config"
	"go-solicitudes/internal/middleware"
	"go-solicitudes/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	if err := cfg.ValidateAPI(); err != nil {
		return err
	}

	// 1. Setup Infrastructure
	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(50, 100))

	// 2. Register Modules & Routes
	return registerModules(router, cfg, redisClient, logger)
}
