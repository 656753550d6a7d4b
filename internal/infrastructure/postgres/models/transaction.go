package models

import (
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionModel struct {
	ID          string                   `gorm:"primaryKey;type:uuid"`
	AccountID   string                   `gorm:"type:uuid;not null;index:idx_txn_account"`
	Account     AccountModel             `gorm:"foreignKey:AccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Kind        domain.TransactionKind   `gorm:"not null;index:idx_txn_kind_status"`
	Amount      decimal.Decimal          `gorm:"type:numeric(20,2);not null"`
	Currency    string                   `gorm:"not null;default:USD"`
	Status      domain.TransactionStatus `gorm:"not null;index:idx_txn_kind_status"`
	Reference   string                   `gorm:"uniqueIndex"`
	Description string
	CreatedAt   time.Time `gorm:"index:idx_txn_created_at"`
	UpdatedAt   time.Time
}

func (TransactionModel) TableName() string { return "transactions" }
