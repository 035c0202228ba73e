package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/sma-mobile-sdk/pkg/config"
	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

// RedisStore keeps session records in Redis. Used by kiosk-style shared
// devices where several terminals share one credential set. Entries carry
// no TTL: token validity is owned by the backend.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisClient returns a configured, ping-verified Redis client.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// NewRedisStore wraps an existing client with a key prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "sma"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Get retrieves the raw value stored for key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.namespaced(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "key not found: "+key)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, "redis get "+key)
	}
	return raw, nil
}

// Set stores the value without expiration.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.namespaced(key), value, 0).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "redis set "+key)
	}
	return nil
}

// Delete removes the key if present.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.namespaced(key)).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "redis del "+key)
	}
	return nil
}

func (s *RedisStore) namespaced(key string) string {
	return s.prefix + ":" + key
}
