package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	connectTimeout = 5 * time.Second
	tokenKey       = "storectl:token"
)

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr string
	DB   int
}

// Connect initialises a Redis client and validates connectivity with a
// ping before anything depends on it.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisTokenStore keeps the token in a single Redis key, for setups where
// several operator machines share one console session.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, tokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token get: %w", err)
	}
	return val, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, tokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("token set: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, tokenKey).Err(); err != nil {
		return fmt.Errorf("token clear: %w", err)
	}
	return nil
}
