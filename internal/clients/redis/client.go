package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"growth-server/internal/config"
	"growth-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

var errNotInitialized = errors.New("Redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns a nil client when Redis is disabled;
// every method on a nil *Client reports errNotInitialized.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	), "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// NewFromRedis wraps an existing go-redis client
func NewFromRedis(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled reports whether the client is connected
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Get returns the raw value stored under key
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.IsEnabled() {
		return nil, errNotInitialized
	}
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return value, err
}

// Set stores value under key with a TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}
