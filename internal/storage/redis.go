package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"loycal/internal/domain"
)

// RedisProgramCache keeps loyalty-program configs in front of Postgres so the
// pay path does not hit the programs table on every accrual.
type RedisProgramCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisProgramCache(client *redis.Client, ttl time.Duration) *RedisProgramCache {
	return &RedisProgramCache{Client: client, TTL: ttl}
}

func (c *RedisProgramCache) programKey(restaurantID string) string {
	return "program:" + restaurantID
}

func (c *RedisProgramCache) GetProgram(ctx context.Context, restaurantID string) (*domain.LoyaltyProgram, bool) {
	raw, err := c.Client.Get(ctx, c.programKey(restaurantID)).Bytes()
	if err != nil {
		return nil, false
	}
	var program domain.LoyaltyProgram
	if err := json.Unmarshal(raw, &program); err != nil {
		return nil, false
	}
	return &program, true
}

func (c *RedisProgramCache) SetProgram(ctx context.Context, program *domain.LoyaltyProgram) error {
	raw, err := json.Marshal(program)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.programKey(program.RestaurantID), raw, c.TTL).Err()
}

func (c *RedisProgramCache) Invalidate(ctx context.Context, restaurantID string) error {
	return c.Client.Del(ctx, c.programKey(restaurantID)).Err()
}
