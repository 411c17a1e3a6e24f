package app

import (
	"go-solicitudes/internal/breakdown"
	"go-solicitudes/internal/catalog"
	"go-solicitudes/internal/config"
	"go-solicitudes/internal/middleware"
	"go-solicitudes/internal/rbac"
	"go-solicitudes/internal/rbac/infra"
	"go-solicitudes/internal/sgp"
	"go-solicitudes/internal/solicitud"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Backend ---
	sgpClient := sgp.NewClient(cfg.SGPBaseURL, cfg.SGPTimeout, logger)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	catalogService := catalog.NewService(sgpClient, rdb, logger)
	breakdownService := breakdown.NewService(catalogService, logger)
	solicitudService := solicitud.NewService(sgpClient, catalogService, rdb, logger)

	// --- Handlers ---
	breakdownHandler := breakdown.NewHandler(breakdownService, logger)
	catalogHandler := catalog.NewHandler(catalogService, logger)
	solicitudHandler := solicitud.NewHandler(solicitudService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	mwCfg := middleware.Config{
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		breakdown.RegisterRoutes(api, breakdownHandler, rbacService, mwCfg, logger)
		catalog.RegisterRoutes(api, catalogHandler, rbacService, mwCfg, logger)
		solicitud.RegisterRoutes(api, solicitudHandler, rbacService, mwCfg, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, mwCfg, logger)
	}

	return nil
}
