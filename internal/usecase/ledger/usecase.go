package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

// DefaultLedgerUsecase applies admin-driven status and amount edits to
// deposit and withdrawal transactions, keeping account balances consistent
// with the status-effect tables.
type DefaultLedgerUsecase struct {
	TxnRepo          domain.TransactionRepository
	AccountRepo      domain.AccountRepository
	NotificationRepo domain.NotificationRepository
	Publisher        domain.NotificationPublisher
	Tiers            domain.TierTable
	Metrics          *metrics.LedgerMetrics
}

func NewDefaultLedgerUsecase(
	txnRepo domain.TransactionRepository,
	accountRepo domain.AccountRepository,
	notificationRepo domain.NotificationRepository,
	publisher domain.NotificationPublisher,
	tiers domain.TierTable,
	ledgerMetrics *metrics.LedgerMetrics,
) *DefaultLedgerUsecase {
	return &DefaultLedgerUsecase{
		TxnRepo:          txnRepo,
		AccountRepo:      accountRepo,
		NotificationRepo: notificationRepo,
		Publisher:        publisher,
		Tiers:            tiers,
		Metrics:          ledgerMetrics,
	}
}

// EditTransactionInput carries the admin-editable transaction fields.
type EditTransactionInput struct {
	Amount      decimal.Decimal
	Currency    string
	Status      domain.TransactionStatus
	Description string
	Reference   string
}

func (in *EditTransactionInput) validate() error {
	if !in.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if !in.Status.Valid() {
		return domain.ErrInvalidStatus
	}
	return nil
}

// refreshLoyaltyTier recomputes the three stored tier fields from the
// account's full completed-deposit history. Called after a deposit newly
// reaches completed, so the sum includes the just-applied transaction.
func (uc *DefaultLedgerUsecase) refreshLoyaltyTier(acc *domain.Account) error {
	total, err := uc.TxnRepo.SumCompletedDeposits(acc.ID)
	if err != nil {
		return fmt.Errorf("summing completed deposits: %w", err)
	}

	tier := uc.Tiers.ResolveTier(total)
	next, nextAmount, err := uc.Tiers.NextTierInfo(tier)
	if err != nil {
		return err
	}

	if err := uc.AccountRepo.UpdateTierFields(acc.ID, tier, next, nextAmount); err != nil {
		return fmt.Errorf("updating tier fields: %w", err)
	}

	if tier != acc.CurrentTier {
		uc.recordTierUpgrade(tier)
		slog.Info("loyalty tier changed",
			"account_id", acc.ID,
			"old_tier", acc.CurrentTier,
			"new_tier", tier,
			"total_deposits", total.StringFixed(2),
		)
		uc.notify(acc.ID, domain.NotificationSystem,
			"Loyalty Tier Updated",
			fmt.Sprintf("Your loyalty tier is now %s", tier),
			fmt.Sprintf("Total completed deposits: $%s\nNext tier: %s ($%s)",
				total.StringFixed(2), next, nextAmount.StringFixed(2)),
		)
	}

	return nil
}

// notify stores the notification row and publishes the event to the broker.
// Neither failure aborts the admin operation that triggered it.
func (uc *DefaultLedgerUsecase) notify(accountID string, notifType domain.NotificationType, title, message, details string) {
	n := domain.Notification{
		AccountID:   accountID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		FullDetails: details,
		CreatedAt:   time.Now(),
	}

	if err := uc.NotificationRepo.CreateNotification(&n); err != nil {
		slog.Error("failed to store notification", "account_id", accountID, "title", title, "error", err.Error())
	}

	if uc.Publisher != nil {
		go func(event domain.Notification) {
			if err := uc.Publisher.PublishNotification(event); err != nil {
				slog.Error("failed to publish NotificationEvent", "account_id", event.AccountID, "error", err.Error())
			}
		}(n)
	}
}

func (uc *DefaultLedgerUsecase) recordBalanceAdjustment(kind domain.TransactionKind, delta decimal.Decimal, clamped bool) {
	if uc.Metrics == nil || delta.IsZero() {
		return
	}
	direction := "credit"
	if delta.IsNegative() {
		direction = "debit"
	}
	uc.Metrics.BalanceAdjustmentsTotal.WithLabelValues(string(kind), direction).Inc()
	if clamped {
		uc.Metrics.BalanceClampsTotal.Inc()
	}
}

func (uc *DefaultLedgerUsecase) recordTierUpgrade(tier domain.TierKey) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TierUpgradesTotal.WithLabelValues(string(tier)).Inc()
}

func (uc *DefaultLedgerUsecase) recordError(operation string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.LedgerErrorsTotal.WithLabelValues(operation).Inc()
}
