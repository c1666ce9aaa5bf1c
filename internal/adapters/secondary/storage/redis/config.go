package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Username string `envconfig:"USERNAME" required:"true"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`

	PoolSize     int `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns int `envconfig:"MIN_IDLE_CONNS" default:"5"`

	DialTimeoutSeconds  int `envconfig:"DIAL_TIMEOUT" default:"5"`
	ReadTimeoutSeconds  int `envconfig:"READ_TIMEOUT" default:"3"`
	WriteTimeoutSeconds int `envconfig:"WRITE_TIMEOUT" default:"3"`

	ConnMaxLifetimeMinutes int `envconfig:"CONN_MAX_LIFETIME" default:"30"`
	ConnMaxIdleTimeMinutes int `envconfig:"CONN_MAX_IDLE_TIME" default:"5"`
}

// NewConnection создает новое подключение к Redis и проверяет его доступность
func (c *Config) NewConnection() (*redis.Client, error) {
	dialTimeout := time.Duration(c.DialTimeoutSeconds) * time.Second

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(c.Host, c.Port),
		Username: c.Username,
		Password: c.Password,
		DB:       c.DB,

		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConns,

		DialTimeout:  dialTimeout,
		ReadTimeout:  time.Duration(c.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(c.WriteTimeoutSeconds) * time.Second,

		ConnMaxLifetime: time.Duration(c.ConnMaxLifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(c.ConnMaxIdleTimeMinutes) * time.Minute,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
