package models

import (
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountModel struct {
	ID                  string          `gorm:"primaryKey;type:uuid"`
	Email               string          `gorm:"uniqueIndex;not null"`
	Balance             decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	Profit              decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	CurrentTier         domain.TierKey  `gorm:"not null;default:iron"`
	NextTier            domain.TierKey
	NextAmountToUpgrade decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (AccountModel) TableName() string { return "accounts" }
