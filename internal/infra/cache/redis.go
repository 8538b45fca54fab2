// Package cache stores serialized search results.
package cache

import (
	"context"
	"log/slog"
	"time"

	"orgs/config"
	"orgs/internal/domain/lifecycle"
	"orgs/internal/domain/service"
	"orgs/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "orgs:search:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type redisCache struct {
	client redis.UniversalClient
}

// New returns a Redis-backed cache when enabled and a no-op cache otherwise.
func New(params Params) service.SearchCache {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; an unreachable Redis only disables hits.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis search cache unreachable", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client)
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client redis.UniversalClient) service.SearchCache {
	return &redisCache{client: client}
}

// Get implements service.SearchCache.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}

	return payload, true, nil
}

// Set implements service.SearchCache.
func (c *redisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+key, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

// noopCache never stores anything.
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}
