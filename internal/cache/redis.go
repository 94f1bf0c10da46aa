package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"health-screen/internal/config"
)

const pingTimeout = 5 * time.Second

// NewRedisClient creates and returns a new Redis client instance.
// It pings the server to ensure connectivity.
func NewRedisClient(ctx context.Context, redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis configuration is missing or address is empty")
	}

	opts, err := clientOptions(redisCfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisCfg.Address, err)
	}

	return client, nil
}

// clientOptions accepts either host:port or a redis:// / rediss:// URL.
// Explicit password and db settings override the URL.
func clientOptions(redisCfg config.RedisConfig) (*redis.Options, error) {
	if !strings.Contains(redisCfg.Address, "://") {
		return &redis.Options{
			Addr:     redisCfg.Address,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		}, nil
	}
	opts, err := redis.ParseURL(redisCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if redisCfg.Password != "" {
		opts.Password = redisCfg.Password
	}
	if redisCfg.DB != 0 {
		opts.DB = redisCfg.DB
	}
	return opts, nil
}
