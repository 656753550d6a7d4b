package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TradeOutcomeRepository interface {
	CreateTradeOutcome(outcome *TradeOutcome) error
	GetTradeOutcomeByID(outcomeID string) (*TradeOutcome, error)
	CloseTradeOutcome(outcomeID string, exitPrice, profitLossPercent decimal.Decimal, closedAt time.Time) error
	// MarkFannedOut stamps the one-shot application time; a stamped trade
	// is never applied again.
	MarkFannedOut(outcomeID string, at time.Time) error
}
