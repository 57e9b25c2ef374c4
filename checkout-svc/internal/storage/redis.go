package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"overcooked-checkout/checkout-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisHoursCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisHoursCache(client *redis.Client, ttl time.Duration) *RedisHoursCache {
	return &RedisHoursCache{Client: client, TTL: ttl}
}

func (c *RedisHoursCache) HoursKey(restaurantID string) string {
	return "working_hours:" + restaurantID
}

func (c *RedisHoursCache) GetWorkingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHourWindow, bool, error) {
	raw, err := c.Client.Get(ctx, c.HoursKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var hours []domain.WorkingHourWindow
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, false, err
	}
	return hours, true, nil
}

func (c *RedisHoursCache) SetWorkingHours(ctx context.Context, restaurantID string, hours []domain.WorkingHourWindow) error {
	payload, err := json.Marshal(hours)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.HoursKey(restaurantID), payload, c.TTL).Err()
}
