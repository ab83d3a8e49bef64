package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endeavored/classwatch/internal/pkg/config"
)

func TestRedisOptions(t *testing.T) {
	opts := redisOptions(config.RedisConfig{Host: "cache.internal", Port: 6380, Password: "secret", DB: 2})

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "classwatch", opts.ClientName)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, opTimeout, opts.ReadTimeout)
	assert.Equal(t, opTimeout, opts.WriteTimeout)
}

func TestNewRedisReportsUnreachableServer(t *testing.T) {
	client, err := NewRedis(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1}, nil)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "ping redis at 127.0.0.1:1")
}
