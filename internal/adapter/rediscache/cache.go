// Package rediscache puts a Redis read-through cache in front of an ad
// source. Listings, stats and the company list are cached; single-record
// lookups go straight to the source.
package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/observability"
)

// KeyPrefix namespaces every key the cache writes.
const KeyPrefix = "adboard:"

const (
	kindAds       = "ads"
	kindStats     = "stats"
	kindCompanies = "companies"
)

// Cache implements port.AdSource and port.Reloader by decorating another
// source. Redis failures are logged and the call falls through.
type Cache struct {
	inner   port.AdSource
	rdb     *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics observability.MetricsRegistry
}

var (
	_ port.AdSource = (*Cache)(nil)
	_ port.Reloader = (*Cache)(nil)
)

// New wraps inner. Entries expire after ttl.
func New(inner port.AdSource, rdb *redis.Client, ttl time.Duration, logger *slog.Logger, metrics observability.MetricsRegistry) *Cache {
	return &Cache{inner: inner, rdb: rdb, ttl: ttl, logger: logger, metrics: metrics}
}

// ListAds caches pages by query. Pages depending on "now" may be served up
// to ttl late.
func (c *Cache) ListAds(ctx context.Context, q port.ListQuery) (*port.AdPage, error) {
	key, err := listKey(q)
	if err != nil {
		return nil, err
	}
	return readThrough(ctx, c, kindAds, key, func() (*port.AdPage, error) {
		return c.inner.ListAds(ctx, q)
	})
}

func (c *Cache) GetAd(ctx context.Context, creativeID string) (*domain.AdRecord, error) {
	return c.inner.GetAd(ctx, creativeID)
}

func (c *Cache) GetStats(ctx context.Context) (*domain.Stats, error) {
	return readThrough(ctx, c, kindStats, KeyPrefix+kindStats, func() (*domain.Stats, error) {
		return c.inner.GetStats(ctx)
	})
}

func (c *Cache) ListCompanies(ctx context.Context) ([]string, error) {
	companies, err := readThrough(ctx, c, kindCompanies, KeyPrefix+kindCompanies, func() (*[]string, error) {
		v, err := c.inner.ListCompanies(ctx)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	return *companies, nil
}

// Reload reloads the wrapped source and drops every cached entry.
func (c *Cache) Reload(ctx context.Context) error {
	r, ok := c.inner.(port.Reloader)
	if !ok {
		return port.ErrUnsupported
	}
	if err := r.Reload(ctx); err != nil {
		return err
	}
	return c.Invalidate(ctx)
}

// Invalidate deletes all keys under KeyPrefix.
func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, KeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete cache keys: %w", err)
	}
	c.logger.Debug("cache invalidated", slog.Int("keys", len(keys)))
	return nil
}

func readThrough[T any](ctx context.Context, c *Cache, kind, key string, load func() (*T, error)) (*T, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if err = json.Unmarshal(raw, &v); err == nil {
			c.metrics.IncrementCacheLookups(kind, observability.CacheHit)
			return &v, nil
		}
		c.logger.Warn("cache decode error", slog.String("key", key), slog.Any("error", err))
		c.metrics.IncrementCacheLookups(kind, observability.CacheError)
	case errors.Is(err, redis.Nil):
		c.metrics.IncrementCacheLookups(kind, observability.CacheMiss)
	default:
		c.logger.Warn("cache get error", slog.String("key", key), slog.Any("error", err))
		c.metrics.IncrementCacheLookups(kind, observability.CacheError)
	}

	v, err := load()
	if err != nil || v == nil {
		return v, err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	if err = c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set error", slog.String("key", key), slog.Any("error", err))
	}
	return v, nil
}

func listKey(q port.ListQuery) (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("encode list query: %w", err)
	}
	sum := sha256.Sum256(data)
	return KeyPrefix + kindAds + ":" + hex.EncodeToString(sum[:]), nil
}
