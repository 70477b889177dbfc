package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/cleanup/internal/app"
	"github.com/polkiloo/cleanup/internal/domain/repository"
	"github.com/polkiloo/cleanup/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	func(f *app.SessionFacade) handlers.SessionFacade { return f },
	func(s repository.BlobStore) handlers.HealthChecker { return s },
	Setup,
)
