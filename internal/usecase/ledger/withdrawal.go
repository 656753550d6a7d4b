package ledger

import (
	"fmt"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
)

// ApproveWithdrawal resolves a withdrawal review. The amount was deducted
// when the withdrawal was created, so completed changes nothing further;
// failed refunds the amount back to the balance.
func (uc *DefaultLedgerUsecase) ApproveWithdrawal(txnID string, status domain.TransactionStatus, adminNotes string) (*domain.MutationResult, error) {
	if status != domain.StatusCompleted && status != domain.StatusFailed {
		return nil, domain.ErrInvalidStatus
	}

	res, err := uc.TxnRepo.MutateWithAccount(txnID, func(txn *domain.Transaction, acc *domain.Account) (*domain.TransactionMutation, error) {
		if txn.Kind != domain.KindWithdrawal {
			return nil, domain.ErrNotWithdrawal
		}
		return &domain.TransactionMutation{
			Status:       status,
			Amount:       txn.Amount,
			Currency:     txn.Currency,
			Description:  txn.Description,
			Reference:    txn.Reference,
			BalanceDelta: withdrawalBalanceDelta(txn.Status, status, txn.Amount, txn.Amount),
			ClampBalance: true,
		}, nil
	})
	if err != nil {
		uc.recordError("approve_withdrawal")
		return nil, err
	}

	uc.recordBalanceAdjustment(domain.KindWithdrawal, res.AppliedDelta, res.Clamped)

	if status == domain.StatusCompleted {
		if uc.Metrics != nil {
			uc.Metrics.WithdrawalsCompletedTotal.WithLabelValues(res.Transaction.Currency).Inc()
		}
		uc.notify(res.Account.ID, domain.NotificationWithdrawal,
			"Withdrawal Approved",
			fmt.Sprintf("Your withdrawal of $%s has been processed", res.Transaction.Amount.StringFixed(2)),
			fmt.Sprintf("Amount: $%s\nReference: %s", res.Transaction.Amount.StringFixed(2), res.Transaction.Reference),
		)
	} else {
		if uc.Metrics != nil {
			uc.Metrics.WithdrawalsRefundedTotal.WithLabelValues(res.Transaction.Currency).Inc()
		}
		details := adminNotes
		if details == "" {
			details = "Amount has been refunded to your balance."
		}
		uc.notify(res.Account.ID, domain.NotificationAlert,
			"Withdrawal Rejected",
			fmt.Sprintf("Your withdrawal of $%s was not processed", res.Transaction.Amount.StringFixed(2)),
			details,
		)
	}

	return res, nil
}

// EditWithdrawal applies an admin edit to a withdrawal. Status moves into
// and out of failed refund and re-deduct respectively; an amount change
// while completed deducts the signed difference. Deductions are clamped at
// the zero-balance floor.
func (uc *DefaultLedgerUsecase) EditWithdrawal(txnID string, in EditTransactionInput) (*domain.MutationResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	res, err := uc.TxnRepo.MutateWithAccount(txnID, func(txn *domain.Transaction, acc *domain.Account) (*domain.TransactionMutation, error) {
		if txn.Kind != domain.KindWithdrawal {
			return nil, domain.ErrNotWithdrawal
		}
		return &domain.TransactionMutation{
			Status:       in.Status,
			Amount:       in.Amount,
			Currency:     in.Currency,
			Description:  in.Description,
			Reference:    in.Reference,
			BalanceDelta: withdrawalBalanceDelta(txn.Status, in.Status, txn.Amount, in.Amount),
			ClampBalance: true,
		}, nil
	})
	if err != nil {
		uc.recordError("edit_withdrawal")
		return nil, err
	}

	uc.recordBalanceAdjustment(domain.KindWithdrawal, res.AppliedDelta, res.Clamped)

	uc.notify(res.Account.ID, domain.NotificationWithdrawal,
		"Withdrawal Updated",
		"Your withdrawal has been updated by admin",
		fmt.Sprintf("Amount: $%s\nCurrency: %s\nStatus: %s\nReference: %s",
			res.Transaction.Amount.StringFixed(2), res.Transaction.Currency,
			res.Transaction.Status, res.Transaction.Reference),
	)

	return res, nil
}
