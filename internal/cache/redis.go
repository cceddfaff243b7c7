package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient wraps the redis connection used for caching catalog snapshots.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr string) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(
		context.Background(),
		(5 * time.Second),
	)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (c *RedisClient) Close() error {
	return c.client.Close()
}

// GetJSON reads the value at key into v. Returns [redis.Nil] wrapped when the
// key is absent.
func (c *RedisClient) GetJSON(ctx context.Context, key string, v any) error {
	payload, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to get '%s' from redis: %w", key, err)
	}

	return json.Unmarshal([]byte(payload), v)
}

// SetJSON stores v at key with a ttl after which the entry expires on its own.
// The ttl bounds staleness if an invalidation is ever missed.
func (c *RedisClient) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal '%s' for redis: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set '%s' in redis: %w", key, err)
	}

	return nil
}

func (c *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys from redis: %w", err)
	}

	return nil
}
