package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the configuration for the Redis-backed token store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// KeyPrefix namespaces the token key, e.g. per user or per tenant.
	KeyPrefix string
	// TTL bounds how long a persisted token survives. Zero means no
	// expiry.
	TTL time.Duration
}

// RedisStore persists the token in Redis, for server-side deployments
// of the SDK where sessions must survive process restarts or be shared
// between replicas.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and pings the server to ensure the
// connection is established.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	key := TokenKey
	if cfg.KeyPrefix != "" {
		key = cfg.KeyPrefix + ":" + TokenKey
	}

	return &RedisStore{client: client, key: key, ttl: cfg.TTL}, nil
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key, token, s.ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoToken
		}
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Clear(ctx context.Context) (bool, error) {
	removed, err := s.client.Del(ctx, s.key).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
