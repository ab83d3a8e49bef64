package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/apperrors"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

type memoryStore struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return apperrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func TestServiceRoundTrip(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, time.Minute, nil, zap.NewNop(), true)
	key := DetailKey(models.ClassQuery{Subject: "CSE", CatalogNumber: "476", Term: "2257"})

	var got []models.ClassSummary
	assert.False(t, svc.Get(context.Background(), key, &got))

	svc.Set(context.Background(), key, []models.ClassSummary{{ClassNumber: "88926", Status: models.StatusOpen}})
	assert.True(t, svc.Get(context.Background(), key, &got))
	assert.Equal(t, "88926", got[0].ClassNumber)
	assert.Equal(t, time.Minute, store.ttls[key])
}

func TestDisabledServiceNeverHits(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, 0, nil, nil, false)

	svc.Set(context.Background(), "k", "v")
	var v string
	assert.False(t, svc.Get(context.Background(), "k", &v))
	assert.Empty(t, store.data)

	var nilSvc *Service
	assert.False(t, nilSvc.Enabled())
	assert.False(t, nilSvc.Get(context.Background(), "k", &v))
}

func TestServiceBackendErrorIsMiss(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("redis down")
	svc := NewService(store, time.Minute, nil, zap.NewNop(), true)

	var v string
	assert.False(t, svc.Get(context.Background(), "k", &v))
}

func TestDetailKey(t *testing.T) {
	assert.Equal(t, "classwatch:details:2257:CSE:476",
		DetailKey(models.ClassQuery{Subject: "CSE", CatalogNumber: "476", Term: "2257"}))
}
