package cache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/apperrors"
	"github.com/endeavored/classwatch/internal/pkg/metrics"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

// Store is the persistence behind Service.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Service wraps a Store with a TTL, metrics and an on/off switch. A nil or
// disabled Service always misses.
type Service struct {
	store   Store
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
	enabled bool
}

func NewService(store Store, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger, enabled bool) *Service {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, ttl: ttl, metrics: m, logger: logger, enabled: enabled}
}

func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.store != nil
}

// Get reports whether dest was filled from cache. Backend errors count as misses.
func (s *Service) Get(ctx context.Context, key string, dest interface{}) bool {
	if !s.Enabled() {
		return false
	}
	err := s.store.Get(ctx, key, dest)
	s.metrics.RecordCacheOperation(err == nil)
	if err != nil && !errors.Is(err, apperrors.ErrCacheMiss) {
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	}
	return err == nil
}

func (s *Service) Set(ctx context.Context, key string, value interface{}) {
	if !s.Enabled() {
		return
	}
	if err := s.store.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// DetailKey is the cache key for a class detail lookup.
func DetailKey(q models.ClassQuery) string {
	return "classwatch:details:" + q.Term + ":" + q.Subject + ":" + q.CatalogNumber
}
