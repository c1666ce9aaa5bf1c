package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client обёртка над redis.Client, реализует cache.Cache
type Client struct {
	client *redis.Client
	log    *slog.Logger
}

func NewClient(client *redis.Client, log *slog.Logger) *Client {
	return &Client{
		client: client,
		log:    log,
	}
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("key not found: %s", key)
		}
		return "", fmt.Errorf("redis get failed [key=%s]: %w", key, err)
	}
	return value, nil
}

func (c *Client) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed [key=%s]: %w", key, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed [key=%s]: %w", key, err)
	}
	return nil
}

func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists failed [key=%s]: %w", key, err)
	}
	return count > 0, nil
}

func (c *Client) Close() error {
	c.log.Debug("closing redis connection")
	return c.client.Close()
}
