package sgp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-solicitudes/internal/breakdown"
	sgperrors "go-solicitudes/internal/sgp/errors"
	"go-solicitudes/internal/shared/apperror"
	"go-solicitudes/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	perDiemConceptsPath   = "/viaticos/conceptos"
	expenseCategoriesPath = "/gastos/tipos"
	solicitudPath         = "/solicitudes/"
)

//go:generate mockgen -source=sgp_client.go -destination=mock/sgp_client_mock.go -package=mock
type Client interface {
	GetPerDiemConcepts(ctx context.Context) ([]breakdown.PerDiemConcept, error)
	GetExpenseCategories(ctx context.Context) ([]breakdown.ExpenseCategory, error)
	GetSolicitud(ctx context.Context, id string) (*breakdown.SubmittedRequest, error)
}

type client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient talks to the SGP backend REST API. Every call forwards the
// caller's bearer token found in the context.
func NewClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) Client {
	l := zap.L().Named("sgp.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sgp.client")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if token := contextutil.GetBearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("sgp request failed",
			zap.String("path", path),
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return apperror.Wrap(err, sgperrors.ErrBackendUnavailable.Code, sgperrors.ErrBackendUnavailable.Message, sgperrors.ErrBackendUnavailable.HTTPStatus)
	}
	defer resp.Body.Close()

	c.logger.Debug("sgp response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return sgperrors.ErrSolicitudNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return sgperrors.ErrBackendUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return sgperrors.ErrBackendForbidden
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("sgp unexpected status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return sgperrors.ErrBackendUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("sgp decode failed", zap.String("path", path), zap.Error(err))
		return apperror.Wrap(err, sgperrors.ErrBackendUnavailable.Code, sgperrors.ErrBackendUnavailable.Message, sgperrors.ErrBackendUnavailable.HTTPStatus)
	}
	return nil
}

func (c *client) GetPerDiemConcepts(ctx context.Context) ([]breakdown.PerDiemConcept, error) {
	var dto []conceptoViaticoDTO
	if err := c.get(ctx, perDiemConceptsPath, &dto); err != nil {
		return nil, err
	}
	return toPerDiemConcepts(dto), nil
}

func (c *client) GetExpenseCategories(ctx context.Context) ([]breakdown.ExpenseCategory, error) {
	var dto []tipoGastoDTO
	if err := c.get(ctx, expenseCategoriesPath, &dto); err != nil {
		return nil, err
	}
	return toExpenseCategories(dto), nil
}

func (c *client) GetSolicitud(ctx context.Context, id string) (*breakdown.SubmittedRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, sgperrors.ErrInvalidSolicitudID
	}

	var dto solicitudDTO
	if err := c.get(ctx, solicitudPath+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	return toSubmittedRequest(dto), nil
}
