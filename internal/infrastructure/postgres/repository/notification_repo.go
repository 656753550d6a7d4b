package repository

import (
	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/mappers"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	DB *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{DB: db}
}

func (r *DefaultNotificationRepository) CreateNotification(n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	model := mappers.ToGORMNotification(n)
	return r.DB.Create(model).Error
}
