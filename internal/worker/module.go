package worker

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the timer backed scheduler and stops it with the application.
var Module = fx.Options(
	fx.Provide(
		NewTimerScheduler,
		func(s *TimerScheduler) Scheduler { return s },
	),
	fx.Invoke(registerLifecycle),
)

func registerLifecycle(lc fx.Lifecycle, s *TimerScheduler) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.Stop()
			return nil
		},
	})
}
