package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/cleanup/internal/domain/errors"
	"github.com/polkiloo/cleanup/internal/domain/model"
	"github.com/polkiloo/cleanup/internal/domain/repository"
	"github.com/polkiloo/cleanup/internal/metrics"
	"github.com/polkiloo/cleanup/internal/worker"
)

// NotificationPublisher receives every notification after it has been logged.
type NotificationPublisher interface {
	Publish(ctx context.Context, n model.Notification) error
}

// Driver names what caused a status transition.
type Driver string

const (
	DriverManual    Driver = "manual"
	DriverAutomatic Driver = "automatic"
)

// ProgressionPlan defines when automatic progression callbacks fire.
type ProgressionPlan struct {
	BaseDelay time.Duration
	StepDelay time.Duration
}

// DefaultProgressionPlan matches the pacing of the storefront simulation.
var DefaultProgressionPlan = ProgressionPlan{BaseDelay: 1500 * time.Millisecond, StepDelay: 2 * time.Second}

// Delay returns the offset of the step-th callback, counted from zero.
func (p ProgressionPlan) Delay(step int) time.Duration {
	return p.BaseDelay + time.Duration(step)*p.StepDelay
}

// EngineDeps groups Engine collaborators.
type EngineDeps struct {
	Orders        repository.OrderRepository
	Notifications repository.NotificationRepository
	Scheduler     worker.Scheduler
	Publishers    []NotificationPublisher
	Metrics       *metrics.Metrics
	Plan          ProgressionPlan
	Limit         int
	Logger        *slog.Logger
	Clock         func() time.Time
	NewID         func() string
}

// Engine is the order state machine. Every mutation runs under one lock
// together with its notification and persistence, so manual and automatic
// drivers never interleave.
type Engine struct {
	mu      sync.Mutex
	store   *OrderStore
	log     *NotificationLog
	pending map[string][]worker.Handle
	stopped bool

	orders        repository.OrderRepository
	notifications repository.NotificationRepository
	scheduler     worker.Scheduler
	publishers    []NotificationPublisher
	metrics       *metrics.Metrics
	plan          ProgressionPlan
	logger        *slog.Logger
	now           func() time.Time
	newID         func() string
}

// NewEngine constructs Engine with an empty state; call Load to restore persisted data.
func NewEngine(d EngineDeps) *Engine {
	e := &Engine{
		store:         NewOrderStore(),
		log:           NewNotificationLog(d.Limit),
		pending:       make(map[string][]worker.Handle),
		orders:        d.Orders,
		notifications: d.Notifications,
		scheduler:     d.Scheduler,
		publishers:    d.Publishers,
		metrics:       d.Metrics,
		plan:          d.Plan,
		logger:        d.Logger,
		now:           d.Clock,
		newID:         d.NewID,
	}
	if e.now == nil {
		e.now = func() time.Time { return time.Now().UTC() }
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Load restores both collections. Backend failures are returned; corrupt data
// has already been replaced by empty collections in the repositories.
func (e *Engine) Load(ctx context.Context) error {
	orders, err := e.orders.Load(ctx)
	if err != nil {
		return err
	}
	notifications, err := e.notifications.Load(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.store.Restore(orders)
	e.log.Restore(notifications)
	e.mu.Unlock()

	e.logger.Info("state restored", slog.Int("orders", len(orders)), slog.Int("notifications", len(notifications)))
	return nil
}

// Create registers a new order and schedules its automatic progression.
func (e *Engine) Create(ctx context.Context, req model.CreateOrderRequest) (model.Order, error) {
	e.mu.Lock()
	order, err := e.store.Create(req, e.newID(), e.now())
	if err != nil {
		e.mu.Unlock()
		return model.Order{}, err
	}
	n := e.notifyLocked(fmt.Sprintf("Order #%s created", order.ShortID()))
	e.persistLocked(ctx, true)
	e.scheduleLocked(order.ID)
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.OrdersCreated.WithLabelValues(string(order.Service)).Inc()
	}
	e.logger.Info("order created", slog.String("order", order.ID), slog.String("service", string(order.Service)), slog.Float64("price", order.Price))
	e.publish(ctx, n)
	return order, nil
}

// Advance moves the order one step forward. On a completed order it is a no-op.
func (e *Engine) Advance(ctx context.Context, id string) (model.Order, error) {
	e.mu.Lock()
	current, ok := e.store.Get(id)
	if !ok {
		e.mu.Unlock()
		return model.Order{}, domainErrors.ErrNotFound
	}
	order, n, err := e.applyLocked(ctx, id, current.Status.Next(), DriverManual)
	e.mu.Unlock()
	if err != nil {
		return model.Order{}, err
	}

	if n != nil {
		e.publish(ctx, *n)
	}
	return order, nil
}

// Progress is the automatic driver: it moves the order to target unless the
// order already reached or passed it.
func (e *Engine) Progress(ctx context.Context, id string, target model.Status) (model.Order, bool, error) {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return model.Order{}, false, nil
	}
	order, n, err := e.applyLocked(ctx, id, target, DriverAutomatic)
	if target.Terminal() {
		delete(e.pending, id)
	}
	e.mu.Unlock()
	if err != nil {
		return model.Order{}, false, err
	}

	if n != nil {
		e.publish(ctx, *n)
	}
	return order, n != nil, nil
}

// applyLocked is the single path that changes status. It returns the emitted
// notification, or nil when the order was already at or past target.
func (e *Engine) applyLocked(ctx context.Context, id string, target model.Status, driver Driver) (model.Order, *model.Notification, error) {
	order, changed, err := e.store.AdvanceTo(id, target, e.now())
	if err != nil || !changed {
		return order, nil, err
	}

	n := e.notifyLocked(fmt.Sprintf("Order #%s → %s", order.ShortID(), order.Status))
	e.persistLocked(ctx, true)
	if order.Status.Terminal() {
		e.cancelPendingLocked(id)
	}

	if e.metrics != nil {
		e.metrics.Transitions.WithLabelValues(string(driver), string(order.Status)).Inc()
	}
	e.logger.Debug("order advanced", slog.String("order", id), slog.String("status", string(order.Status)), slog.String("driver", string(driver)))
	return order, &n, nil
}

// Rate parses and stores a rating. Invalid input leaves the order untouched.
func (e *Engine) Rate(ctx context.Context, req model.RatingRequest) (model.Order, error) {
	value, err := ParseRating(req.Value)
	if err != nil {
		return model.Order{}, err
	}

	e.mu.Lock()
	order, err := e.store.SetRating(req.OrderID, value)
	if err != nil {
		e.mu.Unlock()
		return model.Order{}, err
	}
	n := e.notifyLocked(fmt.Sprintf("Thanks for rating your order %d/5", value))
	e.persistLocked(ctx, true)
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.Ratings.Inc()
	}
	e.publish(ctx, n)
	return order, nil
}

// ClearNotifications empties the notification log.
func (e *Engine) ClearNotifications(ctx context.Context) {
	e.mu.Lock()
	e.log.Clear()
	e.persistLocked(ctx, false)
	e.mu.Unlock()
}

// Orders lists all orders, newest first.
func (e *Engine) Orders() []model.Order {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.List()
}

// Order returns the order with id or ErrNotFound.
func (e *Engine) Order(id string) (model.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := e.store.Get(id)
	if !ok {
		return model.Order{}, domainErrors.ErrNotFound
	}
	return o, nil
}

// Latest returns the most recently created order.
func (e *Engine) Latest() (model.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := e.store.Latest()
	if !ok {
		return model.Order{}, domainErrors.ErrNotFound
	}
	return o, nil
}

// Notifications lists the log, newest first.
func (e *Engine) Notifications() []model.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.List()
}

// Stop cancels every pending progression callback. Later callbacks are ignored.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	for id := range e.pending {
		e.cancelPendingLocked(id)
	}
}

func (e *Engine) scheduleLocked(id string) {
	targets := model.StatusFlow[1:]
	handles := make([]worker.Handle, 0, len(targets))
	for i, target := range targets {
		handles = append(handles, e.scheduler.ScheduleOnce(e.plan.Delay(i), func() {
			if _, _, err := e.Progress(context.Background(), id, target); err != nil {
				e.logger.Error("automatic progression failed", slog.String("order", id), slog.String("target", string(target)), slog.String("error", err.Error()))
			}
		}))
	}
	e.pending[id] = handles
}

func (e *Engine) cancelPendingLocked(id string) {
	for _, h := range e.pending[id] {
		h.Cancel()
	}
	delete(e.pending, id)
}

func (e *Engine) notifyLocked(message string) model.Notification {
	n := e.log.Append(e.newID(), message, e.now())
	if e.metrics != nil {
		e.metrics.Notifications.Inc()
	}
	return n
}

// persistLocked saves notifications and, when withOrders is set, orders.
// Failures are logged and the in-memory state stays authoritative.
func (e *Engine) persistLocked(ctx context.Context, withOrders bool) {
	ctx = context.WithoutCancel(ctx)
	if withOrders {
		if err := e.orders.Save(ctx, e.store.List()); err != nil {
			e.persistFailed("orders", err)
		}
	}
	if err := e.notifications.Save(ctx, e.log.List()); err != nil {
		e.persistFailed("notifications", err)
	}
}

func (e *Engine) persistFailed(collection string, err error) {
	if e.metrics != nil {
		e.metrics.Persistence.WithLabelValues(collection).Inc()
	}
	e.logger.Error("persist state failed", slog.String("collection", collection), slog.String("error", err.Error()))
}

// publish outlives the request that caused the notification.
func (e *Engine) publish(ctx context.Context, n model.Notification) {
	ctx = context.WithoutCancel(ctx)
	for _, p := range e.publishers {
		if err := p.Publish(ctx, n); err != nil {
			e.logger.Warn("publish notification failed", slog.String("notification", n.ID), slog.String("error", err.Error()))
		}
	}
}
