package investfix

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
)

// DefaultInvestFixUsecase repairs copy relationships whose investment
// amount is zero, a leftover of rows imported before the field was
// captured at start time. The replacement value is the threshold snapshot
// taken when copying started, falling back to the trader's current
// minimum; rows with neither are reported and skipped.
type DefaultInvestFixUsecase struct {
	CopyRepo    domain.CopyRelationshipRepository
	AccountRepo domain.AccountRepository
	TraderRepo  domain.TraderRepository
}

func NewDefaultInvestFixUsecase(
	copyRepo domain.CopyRelationshipRepository,
	accountRepo domain.AccountRepository,
	traderRepo domain.TraderRepository,
) *DefaultInvestFixUsecase {
	return &DefaultInvestFixUsecase{
		CopyRepo:    copyRepo,
		AccountRepo: accountRepo,
		TraderRepo:  traderRepo,
	}
}

// Run scans every zero-investment relationship. With apply false it only
// reports the repairs; with apply true it writes them. One row's failure
// is recorded and the scan continues.
func (uc *DefaultInvestFixUsecase) Run(ctx context.Context, apply bool) (*domain.InvestFixReport, error) {
	rels, err := uc.CopyRepo.ListZeroInvestment()
	if err != nil {
		return nil, fmt.Errorf("listing zero-investment relationships: %w", err)
	}

	report := &domain.InvestFixReport{Total: len(rels), Applied: apply}

	for _, rel := range rels {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		email, traderName := uc.describe(rel)

		amount := rel.MinThresholdAtStart
		source := "threshold_at_start"
		if !amount.IsPositive() {
			trader, err := uc.TraderRepo.GetTraderByID(rel.TraderID)
			if err != nil {
				report.Errors = append(report.Errors, domain.AccountError{
					AccountID: rel.AccountID,
					Email:     email,
					Message:   err.Error(),
				})
				continue
			}
			amount = trader.MinAccountThreshold
			source = "trader_threshold"
		}

		if !amount.IsPositive() {
			report.Skipped++
			report.Skips = append(report.Skips, domain.InvestFixSkip{
				RelationshipID: rel.ID,
				AccountEmail:   email,
				TraderName:     traderName,
			})
			continue
		}

		report.Updated++
		report.Changes = append(report.Changes, domain.InvestFixChange{
			RelationshipID: rel.ID,
			AccountEmail:   email,
			TraderName:     traderName,
			Amount:         amount,
			Source:         source,
		})

		if !apply {
			continue
		}
		if err := uc.CopyRepo.SetInvestmentAmount(rel.ID, amount); err != nil {
			report.Updated--
			report.Changes = report.Changes[:len(report.Changes)-1]
			report.Errors = append(report.Errors, domain.AccountError{
				AccountID: rel.AccountID,
				Email:     email,
				Message:   err.Error(),
			})
			slog.Error("investment backfill failed for relationship",
				"relationship_id", rel.ID, "account_id", rel.AccountID, "error", err.Error())
		}
	}

	slog.Info("investment backfill finished",
		"total", report.Total,
		"updated", report.Updated,
		"skipped", report.Skipped,
		"errors", len(report.Errors),
		"applied", report.Applied,
	)
	return report, nil
}

// describe resolves display names for the report; lookups that fail fall
// back to raw ids so the row is still identifiable.
func (uc *DefaultInvestFixUsecase) describe(rel *domain.CopyRelationship) (email, traderName string) {
	email, traderName = rel.AccountID, rel.TraderID
	if acc, err := uc.AccountRepo.GetAccountByID(rel.AccountID); err == nil {
		email = acc.Email
	}
	if trader, err := uc.TraderRepo.GetTraderByID(rel.TraderID); err == nil {
		traderName = trader.Name
	}
	return email, traderName
}
