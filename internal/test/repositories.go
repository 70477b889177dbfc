package test

import (
	"context"
	"sync"

	"github.com/polkiloo/cleanup/internal/domain/model"
)

// OrderRepositoryStub keeps the last saved order collection in memory.
type OrderRepositoryStub struct {
	mu      sync.Mutex
	Stored  []model.Order
	Saves   int
	LoadErr error
	SaveErr error
}

func (s *OrderRepositoryStub) Load(context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]model.Order, 0, len(s.Stored))
	for _, o := range s.Stored {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (s *OrderRepositoryStub) Save(_ context.Context, orders []model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Stored = make([]model.Order, 0, len(orders))
	for _, o := range orders {
		s.Stored = append(s.Stored, o.Clone())
	}
	return nil
}

// Snapshot returns the stored orders under lock.
func (s *OrderRepositoryStub) Snapshot() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.Stored...)
}

// NotificationRepositoryStub keeps the last saved notification log in memory.
type NotificationRepositoryStub struct {
	mu      sync.Mutex
	Stored  []model.Notification
	Saves   int
	LoadErr error
	SaveErr error
}

func (s *NotificationRepositoryStub) Load(context.Context) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]model.Notification(nil), s.Stored...), nil
}

func (s *NotificationRepositoryStub) Save(_ context.Context, items []model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Stored = append([]model.Notification(nil), items...)
	return nil
}

// Snapshot returns the stored notifications under lock.
func (s *NotificationRepositoryStub) Snapshot() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.Stored...)
}

// PublisherStub records published notifications.
type PublisherStub struct {
	mu        sync.Mutex
	Published []model.Notification
	Err       error
}

func (p *PublisherStub) Publish(_ context.Context, n model.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Published = append(p.Published, n)
	return p.Err
}

// Messages returns the text of every published notification in order.
func (p *PublisherStub) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.Published))
	for _, n := range p.Published {
		out = append(out, n.Message)
	}
	return out
}
