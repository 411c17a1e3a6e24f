package breakdown

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
	breakdowns := r.Group("/breakdowns")
	breakdowns.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	breakdowns.Use(middleware.ContextLogger(logger))
	// The wizard calls these on every field change, so they share one
	// per-user budget.
	breakdowns.Use(middleware.RateLimitByUser(cfg.RateLimitRPS, cfg.RateLimitBurst))
	breakdowns.Use(middleware.RBACAuthorize(rbacService, "breakdown", "preview"))
	{
		breakdowns.POST("/preview", handler.Preview)
		breakdowns.POST("/per-diem", handler.DerivePerDiem)
		breakdowns.POST("/expense", handler.DeriveExpense)
		breakdowns.POST("/payroll/validate", handler.ValidatePayroll)
	}
}
