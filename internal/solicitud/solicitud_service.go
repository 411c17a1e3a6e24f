package solicitud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go-solicitudes/internal/breakdown"
	breakdownerrors "go-solicitudes/internal/breakdown/errors"
	"go-solicitudes/internal/sgp"
	"go-solicitudes/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	BreakdownCacheTTL = 10 * time.Minute

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportTitle     = "Desglose presupuestario"
)

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func BreakdownCacheKey(id string) string {
	return "breakdown:solicitud:" + strings.TrimSpace(id)
}

//go:generate mockgen -source=solicitud_service.go -destination=mock/solicitud_service_mock.go -package=mock
type Service interface {
	GetBreakdown(ctx context.Context, id string) (BreakdownResponse, error)
	ExportBreakdown(ctx context.Context, id string) (ExportFile, error)
	InvalidateBreakdown(ctx context.Context, id string) error
}

type service struct {
	client   sgp.Client
	catalogs breakdown.CatalogProvider
	rdb      *redis.Client
	logger   *zap.Logger
}

func NewService(client sgp.Client, catalogs breakdown.CatalogProvider, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("solicitud.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("solicitud.service")
	}
	return &service{
		client:   client,
		catalogs: catalogs,
		rdb:      rdb,
		logger:   l,
	}
}

func (s *service) GetBreakdown(ctx context.Context, id string) (BreakdownResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	cacheKey := BreakdownCacheKey(id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp BreakdownResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				log.Debug("breakdown served from cache", zap.String("solicitud_id", id))
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("breakdown cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	req, err := s.client.GetSolicitud(ctx, id)
	if err != nil {
		log.Warn("get solicitud failed", zap.String("solicitud_id", id), zap.Error(err))
		return BreakdownResponse{}, err
	}

	status, err := ParseStatus(req.Status)
	if err != nil {
		// Unknown states are shown read-only from what the backend stored.
		log.Warn("solicitud has unknown status", zap.String("solicitud_id", id), zap.String("status", req.Status))
		status = Status(req.Status)
	}

	var groups []breakdown.PartidaGroup
	if status.Editable() {
		concepts, err := s.catalogs.PerDiemConcepts(ctx)
		if err != nil {
			log.Error("load per-diem concepts failed", zap.Error(err))
			return BreakdownResponse{}, breakdownerrors.ErrCatalogUnavailable
		}
		categories, err := s.catalogs.ExpenseCategories(ctx)
		if err != nil {
			log.Error("load expense categories failed", zap.Error(err))
			return BreakdownResponse{}, breakdownerrors.ErrCatalogUnavailable
		}
		form := breakdown.EnsureActivityIDs(breakdown.ToFormState(req))
		groups = breakdown.BuildBreakdown(form, breakdown.ReservationsFromResponse(req), concepts, categories)
	} else {
		groups = breakdown.BuildBreakdownFromResponse(req)
	}

	solicitudID := req.ID
	if solicitudID == "" {
		solicitudID = strings.TrimSpace(id)
	}
	resp := BreakdownResponse{
		SolicitudID: solicitudID,
		Code:        req.Code,
		Status:      status,
		Editable:    status.Editable(),
		Groups:      groups,
		Totals:      breakdown.Summarize(groups),
	}

	// Editable requests follow the live catalog, so only frozen snapshots
	// are cached.
	if !resp.Editable && s.rdb != nil {
		if jsonData, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, jsonData, BreakdownCacheTTL).Err(); err != nil {
				log.Warn("breakdown cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) ExportBreakdown(ctx context.Context, id string) (ExportFile, error) {
	resp, err := s.GetBreakdown(ctx, id)
	if err != nil {
		return ExportFile{}, err
	}

	content, err := breakdown.ExportXLSX(breakdown.ExportMeta{
		Title:  exportTitle,
		Code:   resp.Code,
		Status: string(resp.Status),
	}, resp.Groups)
	if err != nil {
		s.logger.Error("export breakdown failed", zap.String("solicitud_id", id), zap.Error(err))
		return ExportFile{}, breakdownerrors.ErrExportFailed
	}

	return ExportFile{
		Filename:    exportFilename(resp),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

func (s *service) InvalidateBreakdown(ctx context.Context, id string) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, BreakdownCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("invalidate breakdown %s: %w", id, err)
	}
	return nil
}

func exportFilename(resp BreakdownResponse) string {
	name := resp.Code
	if name == "" {
		name = resp.SolicitudID
	}
	name = strings.Trim(unsafeFilename.ReplaceAllString(name, "-"), "-")
	if name == "" {
		name = "solicitud"
	}
	return "desglose-" + name + ".xlsx"
}
