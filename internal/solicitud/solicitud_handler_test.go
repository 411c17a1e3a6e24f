package solicitud_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sgperrors "go-solicitudes/internal/sgp/errors"
	"go-solicitudes/internal/solicitud"
	"go-solicitudes/internal/solicitud/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newSolicitudRouter(svc solicitud.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := solicitud.NewHandler(svc)
	r := gin.New()
	r.GET("/solicitudes/:id/breakdown", h.GetBreakdown)
	r.GET("/solicitudes/:id/breakdown/export", h.ExportBreakdown)
	return r
}

func TestSolicitudHandler_GetBreakdown(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		snapshot := snapshotFixture("PENDIENTE")
		svc.EXPECT().GetBreakdown(gomock.Any(), "sol-1").Return(frozenResponse(snapshot, solicitud.StatusPending), nil)

		w := httptest.NewRecorder()
		newSolicitudRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/solicitudes/sol-1/breakdown", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.OK)

		var data struct {
			Code   string `json:"code"`
			Status string `json:"status"`
			Groups []any  `json:"groups"`
		}
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "SOL-2026-001", data.Code)
		assert.Equal(t, "PENDIENTE", data.Status)
		assert.Len(t, data.Groups, 2)
	})

	t.Run("not found", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetBreakdown(gomock.Any(), "nope").Return(solicitud.BreakdownResponse{}, sgperrors.ErrSolicitudNotFound)

		w := httptest.NewRecorder()
		newSolicitudRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/solicitudes/nope/breakdown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.OK)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "NOT_FOUND", env.Error.Code)
		}
	})
}

func TestSolicitudHandler_ExportBreakdown(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ExportBreakdown(gomock.Any(), "sol-1").Return(solicitud.ExportFile{
			Filename:    "desglose-SOL-2026-001.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("PK-data"),
		}, nil)

		w := httptest.NewRecorder()
		newSolicitudRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/solicitudes/sol-1/breakdown/export", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="desglose-SOL-2026-001.xlsx"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK-data", w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ExportBreakdown(gomock.Any(), "sol-1").DoAndReturn(
			func(ctx context.Context, id string) (solicitud.ExportFile, error) {
				return solicitud.ExportFile{}, sgperrors.ErrBackendUnavailable
			},
		)

		w := httptest.NewRecorder()
		newSolicitudRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/solicitudes/sol-1/breakdown/export", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
