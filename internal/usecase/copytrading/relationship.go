package copytrading

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
)

// StartCopying activates a copy relationship between an account and a
// trader. A pair may have at most one active relationship; starting again
// while one is active is rejected.
func (uc *DefaultCopyTradingUsecase) StartCopying(accountID, traderID string, investment decimal.Decimal) (*domain.CopyRelationship, error) {
	if !investment.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := uc.AccountRepo.GetAccountByID(accountID); err != nil {
		return nil, err
	}
	trader, err := uc.TraderRepo.GetTraderByID(traderID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.CopyRepo.GetActive(accountID, traderID)
	if err != nil && !errors.Is(err, domain.ErrCopyNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyCopying
	}

	rel := &domain.CopyRelationship{
		AccountID:           accountID,
		TraderID:            traderID,
		InvestmentAmount:    investment,
		MinThresholdAtStart: trader.MinAccountThreshold,
		IsActive:            true,
		StartedAt:           time.Now(),
	}
	if err := uc.CopyRepo.CreateRelationship(rel); err != nil {
		uc.recordError("start_copying")
		return nil, fmt.Errorf("creating copy relationship: %w", err)
	}

	if err := uc.TraderRepo.AdjustCopierCount(traderID, 1); err != nil {
		slog.Error("failed to bump copier count", "trader_id", traderID, "error", err.Error())
	}

	return rel, nil
}

// RequestCancel flags an active relationship for cancellation. The
// relationship stays active, and keeps receiving fan-out, until an admin
// confirms the stop.
func (uc *DefaultCopyTradingUsecase) RequestCancel(accountID, traderID string) (*domain.CopyRelationship, error) {
	rel, err := uc.CopyRepo.GetActive(accountID, traderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.CopyRepo.RequestCancel(rel.ID, now); err != nil {
		uc.recordError("request_cancel")
		return nil, fmt.Errorf("flagging cancellation: %w", err)
	}
	rel.CancelRequested = true
	rel.CancelRequestedAt = &now
	return rel, nil
}

// StopCopying deactivates the active relationship for the pair and drops
// the trader's copier count. Later fan-outs no longer reach the account.
func (uc *DefaultCopyTradingUsecase) StopCopying(accountID, traderID string) (*domain.CopyRelationship, error) {
	rel, err := uc.CopyRepo.GetActive(accountID, traderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.CopyRepo.Deactivate(rel.ID, now); err != nil {
		uc.recordError("stop_copying")
		return nil, fmt.Errorf("deactivating copy relationship: %w", err)
	}
	rel.IsActive = false
	rel.StoppedAt = &now

	if err := uc.TraderRepo.AdjustCopierCount(traderID, -1); err != nil {
		slog.Error("failed to drop copier count", "trader_id", traderID, "error", err.Error())
	}

	return rel, nil
}
