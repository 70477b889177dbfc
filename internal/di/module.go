package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/cleanup/internal/adapter/kafka"
	"github.com/polkiloo/cleanup/internal/app"
	"github.com/polkiloo/cleanup/internal/config"
	"github.com/polkiloo/cleanup/internal/logger"
	"github.com/polkiloo/cleanup/internal/metrics"
	"github.com/polkiloo/cleanup/internal/server/http/router"
	"github.com/polkiloo/cleanup/internal/server/ws"
	"github.com/polkiloo/cleanup/internal/storage"
	"github.com/polkiloo/cleanup/internal/usecase"
	"github.com/polkiloo/cleanup/internal/worker"
)

// Module assembles the full application graph. Stop hooks run in reverse,
// so the engine stops before the scheduler and storage it depends on.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		storage.Module,
		worker.Module,
		kafka.Module,
		ws.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
