package domain

import "github.com/shopspring/decimal"

// TransactionMutation is the full write set produced by a ledger decision:
// the transaction fields to persist plus the balance delta to apply to the
// owning account. When ClampBalance is set a deduction that would drive the
// balance negative is truncated at zero instead.
type TransactionMutation struct {
	Status       TransactionStatus
	Amount       decimal.Decimal
	Currency     string
	Description  string
	Reference    string
	BalanceDelta decimal.Decimal
	ClampBalance bool
}

// MutationResult reports the state after a transaction mutation committed.
// AppliedDelta is the balance change actually written, which differs from
// the requested delta only when clamping truncated a deduction.
type MutationResult struct {
	Transaction  *Transaction
	Account      *Account
	OldStatus    TransactionStatus
	OldAmount    decimal.Decimal
	AppliedDelta decimal.Decimal
	Clamped      bool
}

// MutationFunc decides a mutation from the current transaction and account
// state. It is called inside the repository transaction while the account
// row is locked, so the values it sees cannot be concurrently modified.
type MutationFunc func(txn *Transaction, acc *Account) (*TransactionMutation, error)

type TransactionRepository interface {
	CreateTransaction(txn *Transaction) error
	GetTransactionByID(txnID string) (*Transaction, error)
	// MutateWithAccount runs fn and persists its decision as one atomic
	// read-modify-write keyed by the owning account: transaction fields
	// and account balance commit together or not at all.
	MutateWithAccount(txnID string, fn MutationFunc) (*MutationResult, error)
	SumCompletedDeposits(accountID string) (decimal.Decimal, error)
}
