package state

import (
	"context"
	"log/slog"

	"bid4service/config"
	"bid4service/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies for the state store.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New picks the store backend from configuration: Redis when configured, the
// in-process store otherwise. Used as an Fx provider.
func New(params Params) (service.StateStore, error) {
	if params.Config.Redis == nil {
		store := NewMemoryStore(TokenTTL)
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				store.Close()

				return nil
			},
		})
		params.Logger.Info("using in-process oauth state store")

		return store, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	params.Logger.Info("using redis oauth state store", slog.String("addr", params.Config.Redis.Addr))

	return NewRedisStore(client, TokenTTL), nil
}
