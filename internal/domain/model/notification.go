package model

import "time"

// Notification is a user-visible alert about an order event.
type Notification struct {
	ID      string
	Message string
	At      time.Time
}
