package ws

import (
	"context"

	"go.uber.org/fx"

	"github.com/polkiloo/cleanup/internal/usecase"
)

// Module provides the notification hub and registers it as a publisher.
var Module = fx.Options(
	fx.Provide(
		NewHub,
		fx.Annotate(
			func(h *Hub) usecase.NotificationPublisher { return h },
			fx.ResultTags(usecase.PublisherGroup),
		),
	),
	fx.Invoke(registerLifecycle),
)

func registerLifecycle(lc fx.Lifecycle, h *Hub) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			h.Close()
			return nil
		},
	})
}
