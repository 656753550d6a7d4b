package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// The partial unique index enforcing one active relationship per
// (account, trader) pair lives in the SQL migrations; gorm cannot
// express the WHERE clause.
type CopyRelationshipModel struct {
	ID                string          `gorm:"primaryKey;type:uuid"`
	AccountID         string          `gorm:"type:uuid;not null;index:idx_copy_account"`
	Account           AccountModel    `gorm:"foreignKey:AccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	TraderID          string          `gorm:"type:uuid;not null;index:idx_copy_trader_active"`
	Trader            TraderModel     `gorm:"foreignKey:TraderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	InvestmentAmount    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	MinThresholdAtStart decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	IsActive            bool            `gorm:"not null;default:true;index:idx_copy_trader_active"`
	CancelRequested     bool            `gorm:"not null;default:false"`
	StartedAt           time.Time       `gorm:"not null"`
	CancelRequestedAt   *time.Time
	StoppedAt           *time.Time
}

func (CopyRelationshipModel) TableName() string { return "copy_relationships" }
