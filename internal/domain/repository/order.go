package repository

import (
	"context"

	"github.com/polkiloo/cleanup/internal/domain/model"
)

// OrderRepository persists the full order collection as a single unit.
type OrderRepository interface {
	Load(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, orders []model.Order) error
}

// NotificationRepository persists the full notification collection as a single unit.
type NotificationRepository interface {
	Load(ctx context.Context) ([]model.Notification, error)
	Save(ctx context.Context, notifications []model.Notification) error
}
