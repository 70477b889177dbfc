package kafka

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/cleanup/internal/config"
	"github.com/polkiloo/cleanup/internal/usecase"
)

// Module exposes the Kafka notification publisher to the fx graph.
var Module = fx.Options(
	fx.Provide(
		newPublisher,
		fx.Annotate(
			func(p *Publisher) usecase.NotificationPublisher { return p },
			fx.ResultTags(usecase.PublisherGroup),
		),
	),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) *Publisher {
	pub := NewPublisher(p.Config.KafkaBrokers, p.Config.KafkaTopic, p.Logger)
	if !pub.Enabled() {
		p.Logger.Info("kafka notification publishing disabled")
	}
	return pub
}

func registerLifecycle(lc fx.Lifecycle, p *Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return p.Close()
		},
	})
}
