package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
)

// AddEarnings credits an admin-entered amount to an account's balance or
// profit and records it as a completed deposit transaction, so the amount
// counts toward the loyalty tier total.
func (uc *DefaultLedgerUsecase) AddEarnings(accountID string, amount decimal.Decimal, destination domain.EarningsDestination, description string) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if destination != domain.EarningsToBalance && destination != domain.EarningsToProfit {
		destination = domain.EarningsToBalance
	}

	acc, err := uc.AccountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	if err := uc.AccountRepo.CreditEarnings(acc.ID, amount, destination); err != nil {
		uc.recordError("add_earnings")
		return nil, err
	}

	if description == "" {
		description = fmt.Sprintf("Admin added earnings to %s", destination)
	}

	idGenerator, err := nanoid.Standard(12)
	if err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		AccountID:   acc.ID,
		Kind:        domain.KindDeposit,
		Amount:      amount,
		Currency:    "USD",
		Status:      domain.StatusCompleted,
		Reference:   fmt.Sprintf("EARN-%s", strings.ToUpper(idGenerator())),
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := uc.TxnRepo.CreateTransaction(txn); err != nil {
		uc.recordError("add_earnings")
		return nil, fmt.Errorf("recording earnings transaction: %w", err)
	}

	if err := uc.refreshLoyaltyTier(acc); err != nil {
		uc.recordError("refresh_loyalty_tier")
	}

	destLabel := "Balance"
	if destination == domain.EarningsToProfit {
		destLabel = "Profit"
	}
	uc.notify(acc.ID, domain.NotificationSystem,
		"Earnings Added",
		fmt.Sprintf("$%s has been added to your %s", amount.StringFixed(2), destLabel),
		description,
	)

	return txn, nil
}
