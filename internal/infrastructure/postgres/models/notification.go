package models

import (
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
)

type NotificationModel struct {
	ID          string                  `gorm:"primaryKey;type:uuid"`
	AccountID   string                  `gorm:"type:uuid;not null;index:idx_notif_account"`
	Type        domain.NotificationType `gorm:"not null"`
	Title       string                  `gorm:"not null"`
	Message     string
	FullDetails string
	CreatedAt   time.Time `gorm:"index:idx_notif_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
