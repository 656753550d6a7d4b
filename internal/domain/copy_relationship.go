package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CopyRelationship joins an account to a trader it copies. At most one
// relationship per (account, trader) pair may be active at a time; the
// storage layer enforces this with a partial unique index.
type CopyRelationship struct {
	ID                string
	AccountID         string
	TraderID          string
	InvestmentAmount  decimal.Decimal
	// MinThresholdAtStart is the trader's MinAccountThreshold captured when
	// the relationship was created. Rows imported before the investment
	// field existed carry a zero InvestmentAmount and are repaired from
	// this snapshot by the backfill job.
	MinThresholdAtStart decimal.Decimal
	IsActive            bool
	CancelRequested     bool
	StartedAt           time.Time
	CancelRequestedAt   *time.Time
	StoppedAt           *time.Time
}
