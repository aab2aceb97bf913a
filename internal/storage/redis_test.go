package storage

import (
	"context"
	"testing"
	"time"

	"menu-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestCache(t *testing.T) *RedisCache {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute)
}

func TestRedisCache_MissReturnsNil(t *testing.T) {
	cache := setupTestCache(t)

	snapshot, err := cache.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	snapshot := &domain.MenuSnapshot{
		Departments: []domain.DepartmentMenu{
			{ID: "dept-1", Title: domain.LocalizedText{CA: "Entrants", ES: "Entrantes"}, Items: []domain.Item{}},
		},
		SupplementGroups: []domain.SupplementGroupMenu{},
		Allergens:        []domain.Allergen{{ID: "alg-1", Code: "G"}},
	}

	assert.NoError(t, cache.Set(ctx, snapshot))

	got, err := cache.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestRedisCache_Invalidate(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, &domain.MenuSnapshot{}))
	assert.NoError(t, cache.Invalidate(ctx))

	snapshot, err := cache.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}
