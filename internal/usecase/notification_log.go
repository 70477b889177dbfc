package usecase

import (
	"time"

	"github.com/polkiloo/cleanup/internal/domain/model"
)

// DefaultNotificationLimit is the hard cap on retained notifications.
// Smaller limits are honoured, larger ones are clamped to it.
const DefaultNotificationLimit = 20

// NotificationLog is a bounded list of notifications, newest first.
// It is not safe for concurrent use.
type NotificationLog struct {
	limit int
	items []model.Notification
}

// NewNotificationLog returns an empty log holding at most limit entries.
func NewNotificationLog(limit int) *NotificationLog {
	if limit <= 0 || limit > DefaultNotificationLimit {
		limit = DefaultNotificationLimit
	}
	return &NotificationLog{limit: limit}
}

// Append prepends a notification and evicts the oldest entries over the limit.
func (l *NotificationLog) Append(id, message string, at time.Time) model.Notification {
	n := model.Notification{ID: id, Message: message, At: at}
	l.items = append([]model.Notification{n}, l.items...)
	if len(l.items) > l.limit {
		l.items = l.items[:l.limit]
	}
	return n
}

// Clear drops every notification.
func (l *NotificationLog) Clear() {
	l.items = nil
}

// List returns a copy of the log, newest first.
func (l *NotificationLog) List() []model.Notification {
	return append([]model.Notification(nil), l.items...)
}

// Restore replaces the log, keeping at most limit of the leading entries.
func (l *NotificationLog) Restore(items []model.Notification) {
	if len(items) > l.limit {
		items = items[:l.limit]
	}
	l.items = append([]model.Notification(nil), items...)
}
