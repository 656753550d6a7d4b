package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CopyRelationshipRepository interface {
	// ListActiveByTrader returns the relationships active at the moment of
	// the call; fan-out operates on this snapshot.
	ListActiveByTrader(traderID string) ([]*CopyRelationship, error)
	GetActive(accountID, traderID string) (*CopyRelationship, error)
	CreateRelationship(rel *CopyRelationship) error
	RequestCancel(relID string, at time.Time) error
	Deactivate(relID string, at time.Time) error
	// ListZeroInvestment returns relationships whose InvestmentAmount is
	// zero, the rows the backfill job repairs.
	ListZeroInvestment() ([]*CopyRelationship, error)
	SetInvestmentAmount(relID string, amount decimal.Decimal) error
}

type TraderRepository interface {
	GetTraderByID(traderID string) (*Trader, error)
	AdjustCopierCount(traderID string, delta int) error
}
