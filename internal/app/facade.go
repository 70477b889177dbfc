package app

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/cleanup/internal/domain/errors"
	"github.com/polkiloo/cleanup/internal/domain/model"
	"github.com/polkiloo/cleanup/internal/usecase"
)

// SessionFacade is the boundary used by transport handlers.
type SessionFacade struct {
	engine *usecase.Engine
}

func NewSessionFacade(engine *usecase.Engine) *SessionFacade {
	return &SessionFacade{engine: engine}
}

func (f *SessionFacade) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.Order, error) {
	return f.engine.Create(ctx, req)
}

func (f *SessionFacade) AdvanceOrder(ctx context.Context, id string) (model.Order, error) {
	return f.engine.Advance(ctx, id)
}

func (f *SessionFacade) RateOrder(ctx context.Context, req model.RatingRequest) (model.Order, error) {
	return f.engine.Rate(ctx, req)
}

func (f *SessionFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.engine.Orders(), nil
}

// Order returns the order with id, or the most recent one when id is empty.
func (f *SessionFacade) Order(ctx context.Context, id string) (model.Order, error) {
	if id == "" {
		return f.engine.Latest()
	}
	return f.engine.Order(id)
}

func (f *SessionFacade) Notifications(ctx context.Context) ([]model.Notification, error) {
	return f.engine.Notifications(), nil
}

func (f *SessionFacade) ClearNotifications(ctx context.Context) error {
	f.engine.ClearNotifications(ctx)
	return nil
}

func (f *SessionFacade) Services(ctx context.Context) []model.ServiceInfo {
	return model.Services()
}

// Quote prices a prospective order without creating it.
func (f *SessionFacade) Quote(ctx context.Context, service string, items int) (model.Quote, error) {
	info, ok := model.LookupService(service)
	if !ok {
		return model.Quote{}, fmt.Errorf("%w: unknown service %q", domainErrors.ErrValidation, service)
	}
	if items < 1 {
		return model.Quote{}, fmt.Errorf("%w: items must be at least 1", domainErrors.ErrValidation)
	}
	return model.Quote{Service: info, Items: items, Price: info.Price(items)}, nil
}
