package dto

import "time"

// NotificationResponse describes a notification entry.
type NotificationResponse struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
