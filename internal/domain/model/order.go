package model

import (
	"strings"
	"time"
)

// Status describes the fulfillment stage of a laundry order.
type Status string

const (
	StatusProcessing     Status = "processing"
	StatusWashed         Status = "washed"
	StatusDried          Status = "dried"
	StatusReadyForPickup Status = "ready_for_pickup"
	StatusCompleted      Status = "completed"
)

// StatusFlow is the fixed order every laundry order moves through.
var StatusFlow = []Status{
	StatusProcessing,
	StatusWashed,
	StatusDried,
	StatusReadyForPickup,
	StatusCompleted,
}

// InitialStatus returns the status assigned at creation.
func InitialStatus() Status { return StatusFlow[0] }

// TerminalStatus returns the last status of the flow.
func TerminalStatus() Status { return StatusFlow[len(StatusFlow)-1] }

// Index returns position of the status in StatusFlow or -1 when unknown.
func (s Status) Index() int {
	for i, st := range StatusFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether status belongs to StatusFlow.
func (s Status) Valid() bool { return s.Index() >= 0 }

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool { return s == TerminalStatus() }

// Next returns the following status, or the status itself once terminal.
func (s Status) Next() Status {
	idx := s.Index()
	if idx < 0 {
		return s
	}
	return StatusFlow[min(idx+1, len(StatusFlow)-1)]
}

// Label is the human readable form used in notifications.
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// TimelineEntry records a status change.
type TimelineEntry struct {
	Status Status
	At     time.Time
}

// Order describes a laundry order tracked through StatusFlow.
type Order struct {
	ID           string
	Name         string
	Service      ServiceKind
	ServiceLabel string
	Items        int
	PickupDate   string
	DeliveryDate string
	Price        float64
	Status       Status
	Timeline     []TimelineEntry
	Rating       *int
}

const shortIDLength = 6

// ShortID returns the last characters of the identifier in upper case, as shown to customers.
func (o Order) ShortID() string {
	id := o.ID
	if len(id) > shortIDLength {
		id = id[len(id)-shortIDLength:]
	}
	return strings.ToUpper(id)
}

// Clone returns a deep copy so callers never share timeline or rating storage.
func (o Order) Clone() Order {
	c := o
	c.Timeline = append([]TimelineEntry(nil), o.Timeline...)
	if o.Rating != nil {
		r := *o.Rating
		c.Rating = &r
	}
	return c
}

// CreateOrderRequest carries validated-by-caller input for a new order.
type CreateOrderRequest struct {
	Name         string
	Service      string
	Items        int
	PickupDate   string
	DeliveryDate string
}

// RatingRequest carries free-form rating input for an order.
type RatingRequest struct {
	OrderID string
	Value   string
}
