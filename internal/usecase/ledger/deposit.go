package ledger

import (
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
)

// ApproveDeposit resolves a pending deposit review: completed credits the
// amount and recomputes the loyalty tier, failed leaves the balance alone.
// The status write and the balance delta commit atomically.
func (uc *DefaultLedgerUsecase) ApproveDeposit(txnID string, status domain.TransactionStatus, adminNotes string) (*domain.MutationResult, error) {
	if status != domain.StatusCompleted && status != domain.StatusFailed {
		return nil, domain.ErrInvalidStatus
	}

	res, err := uc.TxnRepo.MutateWithAccount(txnID, func(txn *domain.Transaction, acc *domain.Account) (*domain.TransactionMutation, error) {
		if txn.Kind != domain.KindDeposit {
			return nil, domain.ErrNotDeposit
		}
		return &domain.TransactionMutation{
			Status:       status,
			Amount:       txn.Amount,
			Currency:     txn.Currency,
			Description:  txn.Description,
			Reference:    txn.Reference,
			BalanceDelta: depositBalanceDelta(txn.Status, status, txn.Amount, txn.Amount),
		}, nil
	})
	if err != nil {
		uc.recordError("approve_deposit")
		return nil, err
	}

	uc.afterDepositMutation(res)

	if status == domain.StatusCompleted {
		uc.notify(res.Account.ID, domain.NotificationDeposit,
			"Deposit Approved",
			fmt.Sprintf("Your deposit of $%s has been approved", res.Transaction.Amount.StringFixed(2)),
			fmt.Sprintf("Amount: $%s\nReference: %s", res.Transaction.Amount.StringFixed(2), res.Transaction.Reference),
		)
	} else {
		if uc.Metrics != nil {
			uc.Metrics.DepositsRejectedTotal.WithLabelValues(res.Transaction.Currency).Inc()
		}
		details := adminNotes
		if details == "" {
			details = "Please contact support for more information."
		}
		uc.notify(res.Account.ID, domain.NotificationAlert,
			"Deposit Rejected",
			fmt.Sprintf("Your deposit of $%s was not approved", res.Transaction.Amount.StringFixed(2)),
			details,
		)
	}

	return res, nil
}

// EditDeposit applies an admin edit of amount, currency, status or metadata.
// The balance moves by exactly newEffect-oldEffect; re-saving identical
// values applies a zero delta.
func (uc *DefaultLedgerUsecase) EditDeposit(txnID string, in EditTransactionInput) (*domain.MutationResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	res, err := uc.TxnRepo.MutateWithAccount(txnID, func(txn *domain.Transaction, acc *domain.Account) (*domain.TransactionMutation, error) {
		if txn.Kind != domain.KindDeposit {
			return nil, domain.ErrNotDeposit
		}
		return &domain.TransactionMutation{
			Status:       in.Status,
			Amount:       in.Amount,
			Currency:     in.Currency,
			Description:  in.Description,
			Reference:    in.Reference,
			BalanceDelta: depositBalanceDelta(txn.Status, in.Status, txn.Amount, in.Amount),
		}, nil
	})
	if err != nil {
		uc.recordError("edit_deposit")
		return nil, err
	}

	uc.afterDepositMutation(res)

	uc.notify(res.Account.ID, domain.NotificationDeposit,
		"Deposit Updated",
		"Your deposit has been updated by admin",
		fmt.Sprintf("Amount: $%s\nCurrency: %s\nStatus: %s\nReference: %s",
			res.Transaction.Amount.StringFixed(2), res.Transaction.Currency,
			res.Transaction.Status, res.Transaction.Reference),
	)

	return res, nil
}

// afterDepositMutation records metrics for the applied delta and triggers
// the tier recompute when the deposit newly reached completed. The balance
// delta is already committed at this point; a tier recompute failure is
// logged, not surfaced, so the admin action itself still reports success.
func (uc *DefaultLedgerUsecase) afterDepositMutation(res *domain.MutationResult) {
	uc.recordBalanceAdjustment(domain.KindDeposit, res.AppliedDelta, res.Clamped)

	newlyCompleted := res.Transaction.Status == domain.StatusCompleted && res.OldStatus != domain.StatusCompleted
	if !newlyCompleted {
		return
	}
	uc.recordDepositCompleted(res)

	if err := uc.refreshLoyaltyTier(res.Account); err != nil {
		uc.recordError("refresh_loyalty_tier")
		slog.Error("tier recompute failed after deposit completion",
			"account_id", res.Account.ID,
			"transaction_id", res.Transaction.ID,
			"error", err.Error(),
		)
	}
}

func (uc *DefaultLedgerUsecase) recordDepositCompleted(res *domain.MutationResult) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.DepositsCompletedTotal.WithLabelValues(res.Transaction.Currency).Inc()
	amount, _ := res.Transaction.Amount.Float64()
	uc.Metrics.DepositsCompletedAmountTotal.WithLabelValues(res.Transaction.Currency).Add(amount)
}
