package catalog

import (
	"net/http"

	"go-solicitudes/internal/shared/apperror"
	"go-solicitudes/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("catalog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("catalog request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) PerDiemConcepts(c *gin.Context) {
	resp, err := h.service.PerDiemConcepts(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewMeta(len(resp)))
}

func (h *Handler) ExpenseCategories(c *gin.Context) {
	resp, err := h.service.ExpenseCategories(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewMeta(len(resp)))
}

func (h *Handler) Refresh(c *gin.Context) {
	h.logger.Info("http refresh catalogs", zap.String("user_id", c.GetString("user_id")))
	if err := h.service.Invalidate(c.Request.Context()); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
