package catalog

import (
	"go-solicitudes/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	cfg middleware.Config,
	logger *zap.Logger,
) {
	catalogs := r.Group("/catalogs")
	catalogs.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	catalogs.Use(middleware.ContextLogger(logger))
	{
		catalogs.GET("/per-diem-concepts",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "catalog", "read"),
			handler.PerDiemConcepts,
		)

		catalogs.GET("/expense-categories",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "catalog", "read"),
			handler.ExpenseCategories,
		)

		catalogs.POST("/refresh",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "catalog", "refresh"),
			handler.Refresh,
		)
	}
}
