package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adboard/internal/config/configs"
)

// NewRedisClient connects to the cache configured in cfg and verifies the
// connection with a ping. The caller must close the returned client.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}
