package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"menu-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const menuSnapshotKey = "menu:snapshot"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// Get returns the cached snapshot, or nil on a miss.
func (c *RedisCache) Get(ctx context.Context) (*domain.MenuSnapshot, error) {
	payload, err := c.Client.Get(ctx, menuSnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot domain.MenuSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *RedisCache) Set(ctx context.Context, snapshot *domain.MenuSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuSnapshotKey, payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, menuSnapshotKey).Err()
}
