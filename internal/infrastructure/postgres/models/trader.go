package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TraderModel struct {
	ID                  string          `gorm:"primaryKey;type:uuid"`
	Name                string          `gorm:"not null"`
	CopierCount         int64           `gorm:"not null;default:0"`
	MinAccountThreshold decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	IsActive            bool            `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (TraderModel) TableName() string { return "traders" }
