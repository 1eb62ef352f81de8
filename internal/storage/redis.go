package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/falvarado7/grubdash/internal/domain"
)

const dishListKey = "dishes:all"

// RedisDishCache is a read-through cache for the dish catalog. Misses and
// Redis errors both read as cache misses so the repository stays the source
// of truth.
type RedisDishCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDishCache(client *redis.Client, ttl time.Duration) *RedisDishCache {
	return &RedisDishCache{Client: client, TTL: ttl}
}

func dishKey(dishID int) string {
	return "dish:" + strconv.Itoa(dishID)
}

func (c *RedisDishCache) GetDish(ctx context.Context, dishID int) (*domain.Dish, bool) {
	payload, err := c.Client.Get(ctx, dishKey(dishID)).Bytes()
	if err != nil {
		return nil, false
	}
	var dish domain.Dish
	if err := json.Unmarshal(payload, &dish); err != nil {
		return nil, false
	}
	return &dish, true
}

func (c *RedisDishCache) GetList(ctx context.Context) ([]domain.Dish, bool) {
	payload, err := c.Client.Get(ctx, dishListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var dishes []domain.Dish
	if err := json.Unmarshal(payload, &dishes); err != nil {
		return nil, false
	}
	return dishes, true
}

func (c *RedisDishCache) SetDish(ctx context.Context, dish *domain.Dish) {
	payload, err := json.Marshal(dish)
	if err != nil {
		return
	}
	_ = c.Client.Set(ctx, dishKey(dish.ID), payload, c.TTL).Err()
}

func (c *RedisDishCache) SetList(ctx context.Context, dishes []domain.Dish) {
	payload, err := json.Marshal(dishes)
	if err != nil {
		return
	}
	_ = c.Client.Set(ctx, dishListKey, payload, c.TTL).Err()
}

// Invalidate drops both the single-dish entry and the list after any
// catalog write.
func (c *RedisDishCache) Invalidate(ctx context.Context, dishID int) {
	_ = c.Client.Del(ctx, dishKey(dishID), dishListKey).Err()
}
