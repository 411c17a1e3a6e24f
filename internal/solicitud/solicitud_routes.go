package solicitud

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
	solicitudes := r.Group("/solicitudes")
	solicitudes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	solicitudes.Use(middleware.ContextLogger(logger))
	{
		solicitudes.GET("/:id/breakdown",
			middleware.RBACAuthorize(rbacService, "breakdown", "read"),
			handler.GetBreakdown,
		)

		solicitudes.GET("/:id/breakdown/export",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "breakdown", "export"),
			handler.ExportBreakdown,
		)
	}
}
