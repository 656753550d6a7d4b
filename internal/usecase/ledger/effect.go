package ledger

import (
	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
)

// depositEffect is the net balance contribution a deposit makes in the
// given status: the full amount once completed, nothing otherwise.
func depositEffect(status domain.TransactionStatus, amount decimal.Decimal) decimal.Decimal {
	if status == domain.StatusCompleted {
		return amount
	}
	return decimal.Zero
}

// depositBalanceDelta is the balance change implied by editing a deposit
// from (oldStatus, oldAmount) to (newStatus, newAmount): newEffect minus
// oldEffect. Re-saving unchanged values yields zero; a completed deposit's
// amount edit yields exactly the difference; leaving completed removes
// exactly what was credited.
func depositBalanceDelta(oldStatus, newStatus domain.TransactionStatus, oldAmount, newAmount decimal.Decimal) decimal.Decimal {
	return depositEffect(newStatus, newAmount).Sub(depositEffect(oldStatus, oldAmount))
}

// withdrawalBalanceDelta mirrors the deposit rule with the sign flipped
// and an extra terminal state. The withdrawal amount is deducted at
// creation time, outside this engine, so pending and completed contribute
// nothing further; failed means "refunded". Moving into failed returns the
// old amount to the balance, moving out of failed deducts the new amount,
// and an amount edit while already completed deducts the signed difference.
func withdrawalBalanceDelta(oldStatus, newStatus domain.TransactionStatus, oldAmount, newAmount decimal.Decimal) decimal.Decimal {
	switch {
	case oldStatus != domain.StatusFailed && newStatus == domain.StatusFailed:
		return oldAmount
	case oldStatus == domain.StatusFailed && newStatus != domain.StatusFailed:
		return newAmount.Neg()
	case newStatus == domain.StatusCompleted && oldStatus == domain.StatusCompleted:
		return newAmount.Sub(oldAmount).Neg()
	default:
		return decimal.Zero
	}
}
