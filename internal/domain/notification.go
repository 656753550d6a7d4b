package domain

import "time"

type NotificationType string

const (
	NotificationDeposit    NotificationType = "deposit"
	NotificationWithdrawal NotificationType = "withdrawal"
	NotificationTrade      NotificationType = "trade"
	NotificationSystem     NotificationType = "system"
	NotificationAlert      NotificationType = "alert"
)

// Notification is the stored record of an outbound message to a user.
// Delivery beyond persisting the row and publishing the event is handled
// by external collaborators.
type Notification struct {
	ID          string
	AccountID   string
	Type        NotificationType
	Title       string
	Message     string
	FullDetails string
	CreatedAt   time.Time
}

type NotificationRepository interface {
	CreateNotification(n *Notification) error
}

// NotificationPublisher pushes notification events to the message broker.
type NotificationPublisher interface {
	PublishNotification(n Notification) error
}
