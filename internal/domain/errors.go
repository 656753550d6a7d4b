package domain

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrTraderNotFound       = errors.New("trader not found")
	ErrTradeOutcomeNotFound = errors.New("trade outcome not found")
	ErrCopyNotFound         = errors.New("active copy relationship not found")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidStatus        = errors.New("unknown transaction status")
	ErrInvalidTradeStatus   = errors.New("unknown trade status")
	ErrUnknownTier          = errors.New("unknown loyalty tier")
	ErrNotDeposit           = errors.New("transaction is not a deposit")
	ErrNotWithdrawal        = errors.New("transaction is not a withdrawal")
	ErrAlreadyCopying       = errors.New("account is already copying this trader")
	ErrTradeAlreadyClosed   = errors.New("trade outcome is already closed")
	ErrTradeAlreadyApplied  = errors.New("trade outcome has already been fanned out")
)
