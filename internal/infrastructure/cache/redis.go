package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freshcart/store-console/internal/metrics"
)

// cacheTTL bounds staleness for entries that outlive the invalidation
// discipline (a crashed run never invalidates).
const cacheTTL = 5 * time.Minute

// Redis carries cached collections across CLI invocations. Key format:
// storectl:cache:<key>
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, payload []byte) error {
	if err := r.client.Set(ctx, r.key(key), payload, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", key, err)
	}
	metrics.CacheInvalidationsTotal.WithLabelValues(key).Inc()
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.key("*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache clear: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache clear scan: %w", err)
	}
	metrics.CacheInvalidationsTotal.WithLabelValues("*").Inc()
	return nil
}

func (r *Redis) key(k string) string {
	return "storectl:cache:" + k
}
