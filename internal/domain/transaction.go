package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Transaction is a mutable-status monetary record. The balance effect
// attributable to it is always a pure function of (Kind, Status, Amount);
// admin edits move the account balance by the delta between the old and
// new effect, never by the full amount twice.
type Transaction struct {
	ID          string
	AccountID   string
	Kind        TransactionKind
	Amount      decimal.Decimal
	Currency    string
	Status      TransactionStatus
	Reference   string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
