package copytrading

import (
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

// DefaultCopyTradingUsecase records admin-entered trade outcomes and
// propagates their P/L to the affected accounts, and maintains the copy
// relationships the propagation fans out over.
type DefaultCopyTradingUsecase struct {
	TradeRepo        domain.TradeOutcomeRepository
	CopyRepo         domain.CopyRelationshipRepository
	TraderRepo       domain.TraderRepository
	AccountRepo      domain.AccountRepository
	NotificationRepo domain.NotificationRepository
	Publisher        domain.NotificationPublisher
	Metrics          *metrics.LedgerMetrics
}

func NewDefaultCopyTradingUsecase(
	tradeRepo domain.TradeOutcomeRepository,
	copyRepo domain.CopyRelationshipRepository,
	traderRepo domain.TraderRepository,
	accountRepo domain.AccountRepository,
	notificationRepo domain.NotificationRepository,
	publisher domain.NotificationPublisher,
	ledgerMetrics *metrics.LedgerMetrics,
) *DefaultCopyTradingUsecase {
	return &DefaultCopyTradingUsecase{
		TradeRepo:        tradeRepo,
		CopyRepo:         copyRepo,
		TraderRepo:       traderRepo,
		AccountRepo:      accountRepo,
		NotificationRepo: notificationRepo,
		Publisher:        publisher,
		Metrics:          ledgerMetrics,
	}
}

// TradeInput carries the admin-entered fields of a trade outcome.
type TradeInput struct {
	Market            string
	Direction         string
	Duration          string
	BaseAmount        decimal.Decimal
	EntryPrice        decimal.Decimal
	ExitPrice         decimal.Decimal
	ProfitLossPercent decimal.Decimal
	Status            domain.TradeStatus
	Notes             string
	OpenedAt          time.Time
}

// FanoutResult reports how one closed trade outcome was applied. Failed
// entries did not abort the batch; their accounts keep their prior balance.
type FanoutResult struct {
	ProfitLoss decimal.Decimal
	Applied    []string
	Failed     []domain.AccountError
}

func (uc *DefaultCopyTradingUsecase) notify(accountID string, title, message, details string) {
	n := domain.Notification{
		AccountID:   accountID,
		Type:        domain.NotificationTrade,
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

func (uc *DefaultCopyTradingUsecase) recordOutcome(kind domain.TradeOutcomeKind, status domain.TradeStatus) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TradeOutcomesRecordedTotal.WithLabelValues(string(kind), string(status)).Inc()
}

func (uc *DefaultCopyTradingUsecase) recordFanout(applied, failed int) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TradeFanoutCopiersTotal.Add(float64(applied))
	uc.Metrics.TradeFanoutErrorsTotal.Add(float64(failed))
}

func (uc *DefaultCopyTradingUsecase) recordError(operation string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.LedgerErrorsTotal.WithLabelValues(operation).Inc()
}
