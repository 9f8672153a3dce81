package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

const (
	categoryListKey = "cache:categories"
	defaultCacheTTL = 30 * time.Second
)

// CategoryCache is a cache-aside store for the category list. Entries expire
// after the configured TTL and are invalidated on every category write.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CategoryCache{client: client, ttl: ttl}
}

// Get returns the cached list, or (nil, nil) on a miss.
func (c *CategoryCache) Get(ctx context.Context) ([]domain.Category, error) {
	raw, err := c.client.Get(ctx, categoryListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("category cache get: %w", err)
	}

	var categories []domain.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("category cache decode: %w", err)
	}
	return categories, nil
}

func (c *CategoryCache) Set(ctx context.Context, categories []domain.Category) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("category cache encode: %w", err)
	}
	return c.client.Set(ctx, categoryListKey, raw, c.ttl).Err()
}

func (c *CategoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, categoryListKey).Err()
}
