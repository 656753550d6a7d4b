package models

import (
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
)

type TradeOutcomeModel struct {
	ID                string                  `gorm:"primaryKey;type:uuid"`
	Kind              domain.TradeOutcomeKind `gorm:"not null;index:idx_trade_kind"`
	TraderID          string                  `gorm:"type:uuid;index:idx_trade_trader"`
	AccountID         string                  `gorm:"type:uuid;index:idx_trade_account"`
	Market            string                  `gorm:"not null"`
	Direction         string
	Duration          string
	BaseAmount        decimal.Decimal    `gorm:"type:numeric(20,2);not null"`
	InvestmentAmount  decimal.Decimal    `gorm:"type:numeric(20,2)"`
	EntryPrice        decimal.Decimal    `gorm:"type:numeric(20,8)"`
	ExitPrice         decimal.Decimal    `gorm:"type:numeric(20,8)"`
	ProfitLossPercent decimal.Decimal    `gorm:"type:numeric(10,4);not null"`
	Status            domain.TradeStatus `gorm:"not null;index:idx_trade_status"`
	Notes             string
	Reference         string `gorm:"uniqueIndex"`
	OpenedAt          time.Time
	ClosedAt          *time.Time
	FannedOutAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (TradeOutcomeModel) TableName() string { return "trade_outcomes" }
