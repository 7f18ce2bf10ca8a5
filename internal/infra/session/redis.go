// Package session implements server-side session storage backed by Redis.
package session

import (
	"context"
	"log/slog"

	"solarad/config"
	"solarad/internal/domain/lifecycle"
	"solarad/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// ClientParams defines the required parameters
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the Redis client backing the session store.
func NewRedisClient(params ClientParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis config is missing")
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

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
