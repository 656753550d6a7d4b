package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds the monetary state of one brokerage user. Balance is the
// spendable amount and never goes below zero; Profit is the cumulative
// realized P/L ledger and may go negative freely.
type Account struct {
	ID                  string
	Email               string
	Balance             decimal.Decimal
	Profit              decimal.Decimal
	CurrentTier         TierKey
	NextTier            TierKey
	NextAmountToUpgrade decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type EarningsDestination string

const (
	EarningsToBalance EarningsDestination = "balance"
	EarningsToProfit  EarningsDestination = "profit"
)

// TradeApplication is the account state after a trade P/L has been applied.
type TradeApplication struct {
	NewBalance decimal.Decimal
	NewProfit  decimal.Decimal
}
