package breakdown

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
	l := zap.L().Named("breakdown.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("breakdown.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("breakdown request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Preview(c *gin.Context) {
	h.logger.Debug("http preview breakdown", zap.String("user_id", c.GetString("user_id")))
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http preview breakdown validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DerivePerDiem(c *gin.Context) {
	var req PerDiemDerivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http derive per-diem validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.DerivePerDiem(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeriveExpense(c *gin.Context) {
	var req ExpenseDerivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http derive expense validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.DeriveExpense(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ValidatePayroll(c *gin.Context) {
	var req PayrollValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http validate payroll validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, "VALIDATION_ERROR", mapped.Message, err.Error())
		return
	}

	resp, err := h.service.ValidatePayroll(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
