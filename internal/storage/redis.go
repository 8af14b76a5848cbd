package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/cvmaker/internal/types"
)

// RedisStore persists the document as a single Redis key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at the given URL and verifies the
// connection before returning.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Load reads and parses the stored document.
func (r *RedisStore) Load(ctx context.Context) (types.Resume, error) {
	data, err := r.client.Get(ctx, StorageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return types.Resume{}, ErrNotFound
		}
		return types.Resume{}, fmt.Errorf("failed to read stored resume: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return types.Resume{}, fmt.Errorf("failed to parse stored resume: %w", err)
	}
	return resume, nil
}

// Save replaces the stored document.
func (r *RedisStore) Save(ctx context.Context, resume types.Resume) error {
	data, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to serialize resume: %w", err)
	}
	if err := r.client.Set(ctx, StorageKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write stored resume: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
