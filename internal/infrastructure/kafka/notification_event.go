package kafka

import (
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
)

// NotificationEvent is the broker-facing shape of a stored notification.
// AdminCopy carries the operator address that should receive a copy of
// alert events; it is empty for every other type.
type NotificationEvent struct {
	NotificationID string `json:"notification_id"`
	AccountID      string `json:"account_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	FullDetails    string `json:"full_details"`
	CreatedAt      string `json:"created_at"`
	AdminCopy      string `json:"admin_copy,omitempty"`
}

// NotificationEventPublisher turns stored notifications into broker events
// and hands them to a raw port.
type NotificationEventPublisher struct {
	Port       domain.PublisherPort
	AdminEmail string
}

func NewNotificationEventPublisher(port domain.PublisherPort, adminEmail string) *NotificationEventPublisher {
	return &NotificationEventPublisher{Port: port, AdminEmail: adminEmail}
}

// PublishNotification keys the event by account id so one user's
// notifications stay ordered within a partition.
func (p *NotificationEventPublisher) PublishNotification(n domain.Notification) error {
	event := NotificationEvent{
		NotificationID: n.ID,
		AccountID:      n.AccountID,
		Type:           string(n.Type),
		Title:          n.Title,
		Message:        n.Message,
		FullDetails:    n.FullDetails,
		CreatedAt:      n.CreatedAt.Format(time.RFC3339),
	}
	if n.Type == domain.NotificationAlert {
		event.AdminCopy = p.AdminEmail
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Port.Publish(domain.Message{Key: []byte(n.AccountID), Value: msg})
}
