package app

import (
	"github.com/LavaJover/shvark-brokerage-service/internal/config"
	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-brokerage-service/internal/usecase/copytrading"
	"github.com/LavaJover/shvark-brokerage-service/internal/usecase/investfix"
	"github.com/LavaJover/shvark-brokerage-service/internal/usecase/ledger"
	"github.com/LavaJover/shvark-brokerage-service/internal/usecase/tiersync"
	"gorm.io/gorm"
)

// App wires the repositories and usecases of the engine. The publisher and
// metrics are optional so the CLI can run without a broker or a registry.
type App struct {
	Ledger      *ledger.DefaultLedgerUsecase
	CopyTrading *copytrading.DefaultCopyTradingUsecase
	TierSync    *tiersync.DefaultTierSyncUsecase
	InvestFix   *investfix.DefaultInvestFixUsecase
}

func New(cfg *config.BrokerageConfig, db *gorm.DB, publisher domain.NotificationPublisher, ledgerMetrics *metrics.LedgerMetrics) *App {
	accountRepo := repository.NewDefaultAccountRepository(db)
	txnRepo := repository.NewDefaultTransactionRepository(db)
	notificationRepo := repository.NewDefaultNotificationRepository(db)
	tradeRepo := repository.NewDefaultTradeOutcomeRepository(db)
	copyRepo := repository.NewDefaultCopyRelationshipRepository(db)
	traderRepo := repository.NewDefaultTraderRepository(db)

	tiers := cfg.Loyalty.TierTable()

	return &App{
		Ledger: ledger.NewDefaultLedgerUsecase(
			txnRepo,
			accountRepo,
			notificationRepo,
			publisher,
			tiers,
			ledgerMetrics,
		),
		CopyTrading: copytrading.NewDefaultCopyTradingUsecase(
			tradeRepo,
			copyRepo,
			traderRepo,
			accountRepo,
			notificationRepo,
			publisher,
			ledgerMetrics,
		),
		TierSync: tiersync.NewDefaultTierSyncUsecase(
			accountRepo,
			txnRepo,
			tiers,
			ledgerMetrics,
			cfg.TierSync.ChunkSize,
		),
		InvestFix: investfix.NewDefaultInvestFixUsecase(
			copyRepo,
			accountRepo,
			traderRepo,
		),
	}
}
