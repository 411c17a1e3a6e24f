package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-solicitudes/internal/breakdown"
	"go-solicitudes/internal/sgp"
	"go-solicitudes/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	PerDiemConceptsKey   = "catalog:per-diem-concepts"
	ExpenseCategoriesKey = "catalog:expense-categories"

	CacheTTL = 1 * time.Hour
)

//go:generate mockgen -source=catalog_service.go -destination=mock/catalog_service_mock.go -package=mock
type Service interface {
	PerDiemConcepts(ctx context.Context) ([]breakdown.PerDiemConcept, error)
	ExpenseCategories(ctx context.Context) ([]breakdown.ExpenseCategory, error)
	Invalidate(ctx context.Context) error
}

type service struct {
	client sgp.Client
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService caches backend catalogs in Redis. rdb may be nil, in which case
// every call goes to the backend.
func NewService(client sgp.Client, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	return &service{
		client: client,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) PerDiemConcepts(ctx context.Context) ([]breakdown.PerDiemConcept, error) {
	return cached(ctx, s, PerDiemConceptsKey, s.client.GetPerDiemConcepts)
}

func (s *service) ExpenseCategories(ctx context.Context) ([]breakdown.ExpenseCategory, error) {
	return cached(ctx, s, ExpenseCategoriesKey, s.client.GetExpenseCategories)
}

func (s *service) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, PerDiemConceptsKey, ExpenseCategoriesKey).Err(); err != nil {
		s.logger.Error("failed to invalidate catalog cache", zap.Error(err))
		return err
	}
	s.logger.Info("catalog cache invalidated")
	return nil
}

// cached reads key from Redis and falls back to load. Concurrent misses for
// the same key share one backend call. Cache errors only cost a backend call.
func cached[T any](ctx context.Context, s *service, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			var out []T
			if json.Unmarshal([]byte(raw), &out) == nil {
				return out, nil
			}
			log.Warn("discarding undecodable catalog cache entry", zap.String("key", key))
		case !errors.Is(err, redis.Nil):
			log.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		items, err := load(ctx)
		if err != nil {
			log.Error("load catalog from backend failed", zap.String("key", key), zap.Error(err))
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(items); err == nil {
				if err := s.rdb.Set(ctx, key, jsonData, CacheTTL).Err(); err != nil {
					log.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]T), nil
}
