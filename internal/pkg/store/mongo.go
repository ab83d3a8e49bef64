package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/config"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

// MongoStore keeps the watch list as the only document of one collection.
// Until the first Update the configured defaults are served.
type MongoStore struct {
	client   *mongo.Client
	coll     *mongo.Collection
	defaults models.WatchList
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewMongoStore(ctx context.Context, cfg config.MongoConfig, defaults models.WatchList, logger *zap.Logger) (*MongoStore, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client:   client,
		coll:     client.Database(cfg.Database).Collection(cfg.Collection),
		defaults: defaults.Clone(),
		logger:   logger,
	}, nil
}

func (s *MongoStore) Load(ctx context.Context) (models.WatchList, error) {
	var wl models.WatchList
	err := s.coll.FindOne(ctx, bson.D{}).Decode(&wl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return s.defaults.Clone(), nil
	}
	if err != nil {
		return models.WatchList{}, fmt.Errorf("load watch list: %w", err)
	}
	return wl.Clone(), nil
}

// Update serialises writers within this process; the document itself is
// replaced wholesale.
func (s *MongoStore) Update(ctx context.Context, fn func(*models.WatchList) error) (models.WatchList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Load(ctx)
	if err != nil {
		return models.WatchList{}, err
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return current, err
	}
	_, err = s.coll.ReplaceOne(ctx, bson.D{}, next, options.Replace().SetUpsert(true))
	if err != nil {
		return current, fmt.Errorf("save watch list: %w", err)
	}
	s.logger.Info("watch list saved", zap.Int("classes", len(next.Classes)), zap.Int("whitelist", len(next.Whitelist)))
	return next, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
