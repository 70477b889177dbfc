package handlers

import (
	"context"

	"github.com/polkiloo/cleanup/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.Order, error)
	AdvanceOrder(ctx context.Context, id string) (model.Order, error)
	RateOrder(ctx context.Context, req model.RatingRequest) (model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (model.Order, error)
}

// NotificationFacade exposes the notification log.
type NotificationFacade interface {
	Notifications(ctx context.Context) ([]model.Notification, error)
	ClearNotifications(ctx context.Context) error
}

// CatalogFacade provides service catalog and pricing.
type CatalogFacade interface {
	Services(ctx context.Context) []model.ServiceInfo
	Quote(ctx context.Context, service string, items int) (model.Quote, error)
}

// SessionFacade aggregates the full set of operations used across handlers.
type SessionFacade interface {
	OrderFacade
	NotificationFacade
	CatalogFacade
}
