package rbac

import (
	"go-solicitudes/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	service Service,
	cfg middleware.Config,
	logger *zap.Logger,
) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions", handler.MyPermissions)
		group.POST("/reload",
			middleware.RBACAuthorize(service, "rbac", "manage"),
			handler.Reload,
		)
	}
}
