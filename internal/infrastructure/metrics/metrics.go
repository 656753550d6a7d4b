package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerMetrics groups every counter and gauge exposed by the engine.
type LedgerMetrics struct {
	// Deposit lifecycle
	DepositsCompletedTotal       prometheus.CounterVec
	DepositsCompletedAmountTotal prometheus.CounterVec
	DepositsRejectedTotal        prometheus.CounterVec

	// Withdrawal lifecycle
	WithdrawalsCompletedTotal prometheus.CounterVec
	WithdrawalsRefundedTotal  prometheus.CounterVec

	// Admin edits that moved a balance
	BalanceAdjustmentsTotal prometheus.CounterVec
	BalanceClampsTotal      prometheus.Counter

	// Loyalty tiers
	TierUpgradesTotal prometheus.CounterVec

	// Copy trading
	TradeOutcomesRecordedTotal prometheus.CounterVec
	TradeFanoutCopiersTotal    prometheus.Counter
	TradeFanoutErrorsTotal     prometheus.Counter

	// Tier reconciliation job
	TierSyncAccountsTotal prometheus.Gauge
	TierSyncUpdatedTotal  prometheus.Gauge
	TierSyncErrorsTotal   prometheus.Gauge

	// Failed operations by name
	LedgerErrorsTotal prometheus.CounterVec
}

func NewLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		DepositsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deposits_completed_total",
				Help: "Deposits moved into completed status",
			},
			[]string{"currency"},
		),
		DepositsCompletedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deposits_completed_amount_total",
				Help: "Total amount credited by completed deposits",
			},
			[]string{"currency"},
		),
		DepositsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deposits_rejected_total",
				Help: "Deposits moved into failed status",
			},
			[]string{"currency"},
		),
		WithdrawalsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawals_completed_total",
				Help: "Withdrawals approved as completed",
			},
			[]string{"currency"},
		),
		WithdrawalsRefundedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawals_refunded_total",
				Help: "Withdrawals rejected and refunded to balance",
			},
			[]string{"currency"},
		),
		BalanceAdjustmentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_adjustments_total",
				Help: "Balance deltas applied by admin status or amount edits",
			},
			[]string{"kind", "direction"},
		),
		BalanceClampsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "balance_clamps_total",
				Help: "Deductions truncated at the zero-balance floor",
			},
		),
		TierUpgradesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tier_upgrades_total",
				Help: "Loyalty tier changes applied after deposit completion",
			},
			[]string{"tier"},
		),
		TradeOutcomesRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trade_outcomes_recorded_total",
				Help: "Trade outcomes recorded by kind and status",
			},
			[]string{"kind", "status"},
		),
		TradeFanoutCopiersTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "trade_fanout_copiers_total",
				Help: "Copier accounts credited or debited by trade fan-out",
			},
		),
		TradeFanoutErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "trade_fanout_errors_total",
				Help: "Copier accounts that failed during trade fan-out",
			},
		),
		TierSyncAccountsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tier_sync_accounts_total",
				Help: "Accounts scanned by the last tier reconciliation run",
			},
		),
		TierSyncUpdatedTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tier_sync_updated_total",
				Help: "Accounts updated (or would-update in dry run) by the last tier reconciliation run",
			},
		),
		TierSyncErrorsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tier_sync_errors_total",
				Help: "Accounts that failed in the last tier reconciliation run",
			},
		),
		LedgerErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_errors_total",
				Help: "Failed engine operations by operation name",
			},
			[]string{"operation"},
		),
	}
}
