package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trader is a followable strategy identity. CopierCount mirrors the number
// of active copy relationships and is adjusted as users start and stop
// copying. MinAccountThreshold is the minimum balance the trader asks of
// new copiers; it is snapshotted onto the relationship at start time.
type Trader struct {
	ID                  string
	Name                string
	CopierCount         int64
	MinAccountThreshold decimal.Decimal
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
