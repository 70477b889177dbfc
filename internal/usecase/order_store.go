package usecase

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/cleanup/internal/domain/errors"
	"github.com/polkiloo/cleanup/internal/domain/model"
)

// OrderStore owns the order collection and all of its mutation rules.
// It is not safe for concurrent use; Engine serializes access.
type OrderStore struct {
	orders []model.Order // newest first
}

// NewOrderStore constructs an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Create validates req and inserts a new order at the front of the collection.
func (s *OrderStore) Create(req model.CreateOrderRequest, id string, now time.Time) (model.Order, error) {
	info, err := ValidateCreateRequest(req)
	if err != nil {
		return model.Order{}, err
	}

	initial := model.InitialStatus()
	order := model.Order{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Service:      info.Kind,
		ServiceLabel: info.Label,
		Items:        req.Items,
		PickupDate:   req.PickupDate,
		DeliveryDate: req.DeliveryDate,
		Price:        info.Price(req.Items),
		Status:       initial,
		Timeline:     []model.TimelineEntry{{Status: initial, At: now}},
	}

	s.orders = append([]model.Order{order}, s.orders...)
	return order.Clone(), nil
}

// AdvanceTo moves the order to target when target lies ahead of its current
// status. changed is false when the order is already at or past target.
func (s *OrderStore) AdvanceTo(id string, target model.Status, now time.Time) (order model.Order, changed bool, err error) {
	if !target.Valid() {
		return model.Order{}, false, fmt.Errorf("%w: %q", domainErrors.ErrInvalidTransition, target)
	}

	i := s.find(id)
	if i < 0 {
		return model.Order{}, false, domainErrors.ErrNotFound
	}

	o := &s.orders[i]
	if target.Index() <= o.Status.Index() {
		return o.Clone(), false, nil
	}

	o.Status = target
	o.Timeline = append(o.Timeline, model.TimelineEntry{Status: target, At: now})
	return o.Clone(), true, nil
}

// SetRating replaces the rating of the order.
func (s *OrderStore) SetRating(id string, rating int) (model.Order, error) {
	if err := checkRating(rating); err != nil {
		return model.Order{}, err
	}

	i := s.find(id)
	if i < 0 {
		return model.Order{}, domainErrors.ErrNotFound
	}

	r := rating
	s.orders[i].Rating = &r
	return s.orders[i].Clone(), nil
}

// Get returns a copy of the order with id.
func (s *OrderStore) Get(id string) (model.Order, bool) {
	i := s.find(id)
	if i < 0 {
		return model.Order{}, false
	}
	return s.orders[i].Clone(), true
}

// Latest returns the most recently created order.
func (s *OrderStore) Latest() (model.Order, bool) {
	if len(s.orders) == 0 {
		return model.Order{}, false
	}
	return s.orders[0].Clone(), true
}

// List returns copies of all orders, newest first.
func (s *OrderStore) List() []model.Order {
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out
}

// Restore replaces the collection with previously persisted orders.
func (s *OrderStore) Restore(orders []model.Order) {
	s.orders = make([]model.Order, 0, len(orders))
	for _, o := range orders {
		s.orders = append(s.orders, o.Clone())
	}
}

func (s *OrderStore) find(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}
