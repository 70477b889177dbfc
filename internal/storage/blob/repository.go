package blob

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/polkiloo/cleanup/internal/domain/model"
	"github.com/polkiloo/cleanup/internal/domain/repository"
)

const (
	OrdersKey        = "cleanup_orders_v1"
	NotificationsKey = "cleanup_notifications_v1"
)

// OrderRepository keeps the whole order collection under a single blob key.
type OrderRepository struct {
	store  repository.BlobStore
	logger *slog.Logger
}

// NewOrderRepository constructs OrderRepository on top of any blob backend.
func NewOrderRepository(store repository.BlobStore, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{store: store, logger: logger}
}

// Load returns stored orders. Missing or corrupt data yields an empty collection.
func (r *OrderRepository) Load(ctx context.Context) ([]model.Order, error) {
	data, found, err := r.store.Get(ctx, OrdersKey)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if !found {
		return nil, nil
	}

	orders, skipped, err := decodeOrders(data)
	if err != nil {
		r.logger.Warn("discarding corrupt orders blob", slog.String("key", OrdersKey), slog.String("error", err.Error()))
		return nil, nil
	}
	if skipped > 0 {
		r.logger.Warn("skipped invalid order records", slog.String("key", OrdersKey), slog.Int("count", skipped))
	}
	return orders, nil
}

// Save overwrites the stored collection.
func (r *OrderRepository) Save(ctx context.Context, orders []model.Order) error {
	data, err := encodeOrders(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := r.store.Put(ctx, OrdersKey, data); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

// NotificationRepository keeps the notification log under a single blob key.
type NotificationRepository struct {
	store  repository.BlobStore
	logger *slog.Logger
}

// NewNotificationRepository constructs NotificationRepository.
func NewNotificationRepository(store repository.BlobStore, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{store: store, logger: logger}
}

func (r *NotificationRepository) Load(ctx context.Context) ([]model.Notification, error) {
	data, found, err := r.store.Get(ctx, NotificationsKey)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	if !found {
		return nil, nil
	}

	items, err := decodeNotifications(data)
	if err != nil {
		r.logger.Warn("discarding corrupt notifications blob", slog.String("key", NotificationsKey), slog.String("error", err.Error()))
		return nil, nil
	}
	return items, nil
}

func (r *NotificationRepository) Save(ctx context.Context, items []model.Notification) error {
	data, err := encodeNotifications(items)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	if err := r.store.Put(ctx, NotificationsKey, data); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}

var (
	_ repository.OrderRepository        = (*OrderRepository)(nil)
	_ repository.NotificationRepository = (*NotificationRepository)(nil)
)
