package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/config"
)

const (
	clientName  = "classwatch"
	pingTimeout = 5 * time.Second

	// A timed-out read is a miss; the lookup falls through to the catalog.
	opTimeout = 500 * time.Millisecond
)

func redisOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		ClientName:   clientName,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  pingTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	}
}

// NewRedis connects the detail cache and checks the server answers.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	opts := redisOptions(cfg)
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}

	if logger != nil {
		logger.Info("redis connected", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	}
	return client, nil
}
