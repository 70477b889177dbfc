package dto

import (
	"encoding/json"
	"time"
)

// CreateOrderRequest describes the order creation payload.
type CreateOrderRequest struct {
	Name         string `json:"name"`
	Service      string `json:"service"`
	Items        int    `json:"items"`
	PickupDate   string `json:"pickupDate"`
	DeliveryDate string `json:"deliveryDate"`
}

// TimelineEntryResponse is a single status change.
type TimelineEntryResponse struct {
	Status string    `json:"status"`
	Label  string    `json:"label"`
	At     time.Time `json:"at"`
}

// OrderResponse represents an order with its timeline.
type OrderResponse struct {
	ID           string                  `json:"id"`
	ShortID      string                  `json:"shortId"`
	Name         string                  `json:"name"`
	Service      string                  `json:"service"`
	ServiceLabel string                  `json:"serviceLabel"`
	Items        int                     `json:"items"`
	PickupDate   string                  `json:"pickupDate"`
	DeliveryDate string                  `json:"deliveryDate"`
	Price        float64                 `json:"price"`
	Status       string                  `json:"status"`
	StatusLabel  string                  `json:"statusLabel"`
	Step         int                     `json:"step"`
	Timeline     []TimelineEntryResponse `json:"timeline"`
	Rating       *int                    `json:"rating"`
}

// RatingRequest accepts the rating either as a JSON string or a number.
type RatingRequest struct {
	Value json.RawMessage `json:"value"`
}
