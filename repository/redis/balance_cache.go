package redis

import (
	"context"
	"strconv"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/bankgo/mspayment/usecase"
)

type balanceCache struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewBalanceCache creates a Redis-backed per-client balance cache.
func NewBalanceCache(client *redislib.Client, ttl time.Duration) usecase.BalanceCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &balanceCache{
		client: client,
		prefix: "balance:",
		ttl:    ttl,
	}
}

func (c *balanceCache) Get(ctx context.Context, clientID string) (float64, bool, error) {
	result, err := c.client.Get(ctx, c.key(clientID)).Result()
	if err != nil {
		if err == redislib.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}

	total, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, false, err
	}
	return total, true, nil
}

func (c *balanceCache) Set(ctx context.Context, clientID string, total float64) error {
	value := strconv.FormatFloat(total, 'f', -1, 64)
	return c.client.Set(ctx, c.key(clientID), value, c.ttl).Err()
}

func (c *balanceCache) Invalidate(ctx context.Context, clientID string) error {
	return c.client.Del(ctx, c.key(clientID)).Err()
}

func (c *balanceCache) key(clientID string) string {
	return c.prefix + clientID
}
