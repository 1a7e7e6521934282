package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/vitalogapp/vitalog-backend/internal/domain/events"
	"github.com/vitalogapp/vitalog-backend/pkg/config"
	"github.com/vitalogapp/vitalog-backend/pkg/logger"
)

var log = logger.NewLogger()

var (
	ErrCacheNotFound   = errors.New("cache: key not found")
	ErrCacheConnection = errors.New("cache: connection error")
)

// DashboardEventChannel is the Redis channel for dashboard events
const DashboardEventChannel = "dashboard:events"

const keyPrefix = "vitalog:"

// RedisClient wraps the Redis client with key prefixing and the dashboard
// event pub/sub used for cache invalidation.
type RedisClient struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisClient creates a Redis client from project configuration
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     100,
		MinIdleConns: 10,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheConnection, err)
	}

	return &RedisClient{
		client:     client,
		defaultTTL: cfg.Dashboard.CacheTTL,
	}, nil
}

func (r *RedisClient) key(k string) string {
	return keyPrefix + k
}

// Get retrieves a cached value. A missing key returns ErrCacheNotFound.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a value with the given TTL; ttl <= 0 uses the configured default.
func (r *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	return r.client.Set(ctx, r.key(key), value, ttl).Err()
}

// Delete removes a key. Deleting a missing key is not an error.
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// ClearByPattern removes all keys matching the pattern, e.g. "dashboard:*".
func (r *RedisClient) ClearByPattern(ctx context.Context, pattern string) error {
	iter := r.client.Scan(ctx, 0, r.key(pattern), 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// PublishDashboardEvent broadcasts a dashboard event to all listeners
func (r *RedisClient) PublishDashboardEvent(ctx context.Context, event *events.DashboardEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard event: %w", err)
	}
	return r.client.Publish(ctx, DashboardEventChannel, payload).Err()
}

// SubscribeToDashboardEvents blocks, invoking handler for every dashboard
// event until the context is cancelled.
func (r *RedisClient) SubscribeToDashboardEvents(ctx context.Context, handler func(*events.DashboardEvent) error) error {
	sub := r.client.Subscribe(ctx, DashboardEventChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event events.DashboardEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Error("Failed to decode dashboard event", zap.Error(err))
				continue
			}
			if err := handler(&event); err != nil {
				log.Error("Dashboard event handler failed",
					zap.Error(err),
					zap.String("event_type", event.EventType))
			}
		}
	}
}

// HealthCheck pings the Redis server
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close shuts down the underlying client
func (r *RedisClient) Close() error {
	return r.client.Close()
}
