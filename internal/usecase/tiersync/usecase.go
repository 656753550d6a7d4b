package tiersync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/metrics"
)

const defaultChunkSize = 100

// DefaultTierSyncUsecase recomputes every account's loyalty tier fields
// from its completed-deposit history and reconciles the stored values.
// It never touches balances; the tier fields are derived data.
type DefaultTierSyncUsecase struct {
	AccountRepo domain.AccountRepository
	TxnRepo     domain.TransactionRepository
	Tiers       domain.TierTable
	Metrics     *metrics.LedgerMetrics
	ChunkSize   int
}

func NewDefaultTierSyncUsecase(
	accountRepo domain.AccountRepository,
	txnRepo domain.TransactionRepository,
	tiers domain.TierTable,
	ledgerMetrics *metrics.LedgerMetrics,
	chunkSize int,
) *DefaultTierSyncUsecase {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &DefaultTierSyncUsecase{
		AccountRepo: accountRepo,
		TxnRepo:     txnRepo,
		Tiers:       tiers,
		Metrics:     ledgerMetrics,
		ChunkSize:   chunkSize,
	}
}

// Run scans all accounts in id order, chunk by chunk. With apply false it
// only reports what would change; with apply true it writes the corrected
// tier fields. One account's failure is recorded and the scan continues;
// cancellation is honored between chunks.
func (uc *DefaultTierSyncUsecase) Run(ctx context.Context, apply bool) (*domain.TierSyncReport, error) {
	ids, err := uc.AccountRepo.ListAccountIDs()
	if err != nil {
		return nil, fmt.Errorf("listing account ids: %w", err)
	}

	report := &domain.TierSyncReport{Total: len(ids), Applied: apply}

	for start := 0; start < len(ids); start += uc.ChunkSize {
		if err := ctx.Err(); err != nil {
			uc.publishGauges(report)
			return report, err
		}

		end := start + uc.ChunkSize
		if end > len(ids) {
			end = len(ids)
		}

		accounts, err := uc.AccountRepo.GetAccountsByIDs(ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("loading accounts %d..%d: %w", start, end, err)
		}

		for _, acc := range accounts {
			if err := uc.reconcile(acc, apply, report); err != nil {
				report.Errors = append(report.Errors, domain.AccountError{
					AccountID: acc.ID,
					Email:     acc.Email,
					Message:   err.Error(),
				})
				slog.Error("tier sync failed for account",
					"account_id", acc.ID, "email", acc.Email, "error", err.Error())
			}
		}
	}

	uc.publishGauges(report)
	slog.Info("tier sync finished",
		"total", report.Total,
		"already_correct", report.AlreadyCorrect,
		"updated", report.Updated,
		"errors", len(report.Errors),
		"applied", report.Applied,
	)
	return report, nil
}

func (uc *DefaultTierSyncUsecase) reconcile(acc *domain.Account, apply bool, report *domain.TierSyncReport) error {
	total, err := uc.TxnRepo.SumCompletedDeposits(acc.ID)
	if err != nil {
		return fmt.Errorf("summing completed deposits: %w", err)
	}

	tier := uc.Tiers.ResolveTier(total)
	next, nextAmount, err := uc.Tiers.NextTierInfo(tier)
	if err != nil {
		return err
	}

	correct := acc.CurrentTier == tier &&
		acc.NextTier == next &&
		acc.NextAmountToUpgrade.Equal(nextAmount)
	if correct {
		report.AlreadyCorrect++
		return nil
	}

	report.Updated++
	report.Changes = append(report.Changes, domain.TierSyncChange{
		AccountID:     acc.ID,
		Email:         acc.Email,
		TotalDeposits: total,
		OldTier:       acc.CurrentTier,
		NewTier:       tier,
		NextTier:      next,
		NextAmount:    nextAmount,
	})

	if !apply {
		return nil
	}
	if err := uc.AccountRepo.UpdateTierFields(acc.ID, tier, next, nextAmount); err != nil {
		return fmt.Errorf("updating tier fields: %w", err)
	}
	return nil
}

func (uc *DefaultTierSyncUsecase) publishGauges(report *domain.TierSyncReport) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TierSyncAccountsTotal.Set(float64(report.Total))
	uc.Metrics.TierSyncUpdatedTotal.Set(float64(report.Updated))
	uc.Metrics.TierSyncErrorsTotal.Set(float64(len(report.Errors)))
}
