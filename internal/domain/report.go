package domain

import "github.com/shopspring/decimal"

// AccountError records one account's failure inside a batch operation
// without aborting the batch.
type AccountError struct {
	AccountID string
	Email     string
	Message   string
}

// TierSyncChange describes one account whose stored tier fields disagree
// with the recomputed values. In a dry run it is the would-be change.
type TierSyncChange struct {
	AccountID     string
	Email         string
	TotalDeposits decimal.Decimal
	OldTier       TierKey
	NewTier       TierKey
	NextTier      TierKey
	NextAmount    decimal.Decimal
}

// TierSyncReport summarizes one reconciliation pass.
type TierSyncReport struct {
	Total          int
	AlreadyCorrect int
	Updated        int
	Applied        bool
	Changes        []TierSyncChange
	Errors         []AccountError
}

// InvestFixChange describes one zero-investment relationship and the
// amount chosen to repair it. Source names the field the amount came from.
type InvestFixChange struct {
	RelationshipID string
	AccountEmail   string
	TraderName     string
	Amount         decimal.Decimal
	Source         string
}

// InvestFixSkip is a zero-investment relationship with no threshold to
// backfill from; it is reported and left untouched.
type InvestFixSkip struct {
	RelationshipID string
	AccountEmail   string
	TraderName     string
}

// InvestFixReport summarizes one backfill pass over zero-investment
// copy relationships.
type InvestFixReport struct {
	Total   int
	Updated int
	Skipped int
	Applied bool
	Changes []InvestFixChange
	Skips   []InvestFixSkip
	Errors  []AccountError
}
