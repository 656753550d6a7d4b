package domain

import "github.com/shopspring/decimal"

type AccountRepository interface {
	GetAccountByID(accountID string) (*Account, error)
	// ListAccountIDs returns every account id in ascending id order. The
	// full id list is fetched up front so batch jobs never hold a
	// long-lived cursor over the accounts table.
	ListAccountIDs() ([]string, error)
	GetAccountsByIDs(ids []string) ([]*Account, error)
	UpdateTierFields(accountID string, current, next TierKey, nextAmount decimal.Decimal) error
	CreditEarnings(accountID string, amount decimal.Decimal, destination EarningsDestination) error
	// ApplyTradeResult atomically applies a trade P/L to one account:
	// profit moves by pl unconditionally, balance moves by pl but is
	// floored at zero. Runs as a single row-locked read-modify-write.
	ApplyTradeResult(accountID string, pl decimal.Decimal) (*TradeApplication, error)
}
