package test

import (
	"context"
	"errors"

	"go.uber.org/fx"
)

// HookRecorder is an fx.Lifecycle that keeps hooks so tests can drive them.
type HookRecorder struct {
	Hooks []fx.Hook
}

func (r *HookRecorder) Append(h fx.Hook) {
	r.Hooks = append(r.Hooks, h)
}

// Start runs OnStart hooks in registration order and stops at the first failure.
func (r *HookRecorder) Start(ctx context.Context) error {
	for _, h := range r.Hooks {
		if h.OnStart == nil {
			continue
		}
		if err := h.OnStart(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop runs OnStop hooks in reverse order, as fx does, and joins their errors.
func (r *HookRecorder) Stop(ctx context.Context) error {
	var errs []error
	for i := len(r.Hooks) - 1; i >= 0; i-- {
		if r.Hooks[i].OnStop == nil {
			continue
		}
		if err := r.Hooks[i].OnStop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ShutdownRequests is an fx.Shutdowner that reports each request on a channel.
type ShutdownRequests chan struct{}

func (s ShutdownRequests) Shutdown(...fx.ShutdownOption) error {
	select {
	case s <- struct{}{}:
	default:
	}
	return nil
}
