package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/cleanup/internal/config"
	"github.com/polkiloo/cleanup/internal/domain/repository"
	"github.com/polkiloo/cleanup/internal/storage/blob"
	"github.com/polkiloo/cleanup/internal/storage/memory"
	"github.com/polkiloo/cleanup/internal/storage/postgres"
	"github.com/polkiloo/cleanup/internal/storage/redis"
)

// Module wires the configured blob backend and the order/notification repositories on top of it.
var Module = fx.Options(
	fx.Provide(newBlobStore),
	fx.Provide(
		func(store repository.BlobStore, logger *slog.Logger) repository.OrderRepository {
			return blob.NewOrderRepository(store, logger)
		},
		func(store repository.BlobStore, logger *slog.Logger) repository.NotificationRepository {
			return blob.NewNotificationRepository(store, logger)
		},
	),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newBlobStore(p storeParams) (repository.BlobStore, error) {
	switch p.Config.StorageBackend {
	case config.BackendPostgres:
		return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	case config.BackendRedis:
		return redis.New(p.Ctx, p.Config.RedisAddr, p.Logger)
	case config.BackendMemory:
		p.Logger.Warn("using in-memory storage; state is lost on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", p.Config.StorageBackend)
	}
}

func registerLifecycle(lc fx.Lifecycle, store repository.BlobStore, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := store.Close(); err != nil {
				logger.Error("close storage failed", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	})
}
