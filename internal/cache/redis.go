package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache caches route search results. The catalog itself is in-memory;
// the cache exists for deployments where many API replicas share one redis.
type RedisCache struct {
	client   *redis.Client
	routeTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, routeTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		routeTTL: routeTTL,
	}
}

func (c *RedisCache) GetRoute(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, routeKey(origin, destination)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetRoute(ctx context.Context, origin, destination string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, routeKey(origin, destination), payload, c.routeTTL).Err()
}

func routeKey(origin, destination string) string {
	return fmt.Sprintf("cache:route:%s:%s", origin, destination)
}
