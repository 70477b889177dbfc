package test

import (
	"context"
	"sync"

	"github.com/polkiloo/cleanup/internal/domain/model"
)

// SessionFacadeStub provides controllable behaviour for HTTP handlers.
type SessionFacadeStub struct {
	CreateFn        func(context.Context, model.CreateOrderRequest) (model.Order, error)
	AdvanceFn       func(context.Context, string) (model.Order, error)
	RateFn          func(context.Context, model.RatingRequest) (model.Order, error)
	OrdersFn        func(context.Context) ([]model.Order, error)
	OrderFn         func(context.Context, string) (model.Order, error)
	NotificationsFn func(context.Context) ([]model.Notification, error)
	ClearFn         func(context.Context) error
	QuoteFn         func(context.Context, string, int) (model.Quote, error)
}

// CreateOrder delegates to CreateFn or echoes the request as a new order.
func (s SessionFacadeStub) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return model.Order{ID: "new", Name: req.Name, Items: req.Items, Status: model.StatusProcessing}, nil
}

func (s SessionFacadeStub) AdvanceOrder(ctx context.Context, id string) (model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, id)
	}
	return model.Order{ID: id, Status: model.StatusWashed}, nil
}

func (s SessionFacadeStub) RateOrder(ctx context.Context, req model.RatingRequest) (model.Order, error) {
	if s.RateFn != nil {
		return s.RateFn(ctx, req)
	}
	return model.Order{ID: req.OrderID}, nil
}

func (s SessionFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

func (s SessionFacadeStub) Order(ctx context.Context, id string) (model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return model.Order{ID: id}, nil
}

func (s SessionFacadeStub) Notifications(ctx context.Context) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx)
	}
	return nil, nil
}

func (s SessionFacadeStub) ClearNotifications(ctx context.Context) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx)
	}
	return nil
}

// Services returns the real catalog.
func (s SessionFacadeStub) Services(context.Context) []model.ServiceInfo {
	return model.Services()
}

func (s SessionFacadeStub) Quote(ctx context.Context, service string, items int) (model.Quote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, service, items)
	}
	info, _ := model.LookupService(service)
	return model.Quote{Service: info, Items: items, Price: info.Price(items)}, nil
}

// EngineStub records lifecycle calls made by the application.
type EngineStub struct {
	mu      sync.Mutex
	LoadErr error
	Loaded  int
	Stopped int
}

func (e *EngineStub) Load(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Loaded++
	return e.LoadErr
}

func (e *EngineStub) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Stopped++
}
