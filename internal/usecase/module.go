package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/cleanup/internal/config"
	"github.com/polkiloo/cleanup/internal/domain/repository"
	"github.com/polkiloo/cleanup/internal/metrics"
	"github.com/polkiloo/cleanup/internal/worker"
)

// PublisherGroup is the fx value group collecting NotificationPublisher implementations.
const PublisherGroup = `group:"notification_publishers"`

// Module provides the lifecycle engine to the fx container.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Orders        repository.OrderRepository
	Notifications repository.NotificationRepository
	Scheduler     worker.Scheduler
	Metrics       *metrics.Metrics        `optional:"true"`
	Publishers    []NotificationPublisher `group:"notification_publishers"`
}

func newEngine(p engineParams) *Engine {
	return NewEngine(EngineDeps{
		Orders:        p.Orders,
		Notifications: p.Notifications,
		Scheduler:     p.Scheduler,
		Publishers:    p.Publishers,
		Metrics:       p.Metrics,
		Plan: ProgressionPlan{
			BaseDelay: p.Config.ProgressBaseDelay,
			StepDelay: p.Config.ProgressStepDelay,
		},
		Limit:  p.Config.NotificationLimit,
		Logger: p.Logger,
	})
}
