package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TradeOutcomeKind string

const (
	// TradeTraderFanout is recorded against a trader and applied to every
	// active copier; the P/L basis is the admin-entered BaseAmount.
	TradeTraderFanout TradeOutcomeKind = "trader_fanout"
	// TradeDirect is recorded against a single account; the P/L basis is
	// the account-specific InvestmentAmount, not BaseAmount.
	TradeDirect TradeOutcomeKind = "direct"
)

type TradeStatus string

const (
	TradeOpen   TradeStatus = "open"
	TradeClosed TradeStatus = "closed"
)

func (s TradeStatus) Valid() bool {
	return s == TradeOpen || s == TradeClosed
}

// TradeOutcome is a single admin-entered trade event. Its monetary effect
// is applied at most once, when the outcome is closed; FannedOutAt records
// that application and blocks any later re-trigger. Edits after creation
// never re-run the application.
type TradeOutcome struct {
	ID                string
	Kind              TradeOutcomeKind
	TraderID          string // fan-out trades only
	AccountID         string // direct trades only
	Market            string
	Direction         string
	Duration          string
	BaseAmount        decimal.Decimal
	InvestmentAmount  decimal.Decimal // direct trades only
	EntryPrice        decimal.Decimal
	ExitPrice         decimal.Decimal
	ProfitLossPercent decimal.Decimal
	Status            TradeStatus
	Notes             string
	Reference         string
	OpenedAt          time.Time
	ClosedAt          *time.Time
	FannedOutAt       *time.Time
}

// ProfitLoss computes the trade's P/L in currency units: basis * percent / 100.
// The basis is BaseAmount for fan-out trades and InvestmentAmount for direct
// trades; the divergence is intentional and must be preserved.
func (o *TradeOutcome) ProfitLoss() decimal.Decimal {
	basis := o.BaseAmount
	if o.Kind == TradeDirect {
		basis = o.InvestmentAmount
	}
	return basis.Mul(o.ProfitLossPercent).Div(decimal.NewFromInt(100)).Round(2)
}
