package copytrading

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
)

// RecordDirectTrade records a trade outcome against a single account. The
// P/L basis is the account-specific investment amount rather than the
// trade's base amount; closed outcomes apply immediately.
func (uc *DefaultCopyTradingUsecase) RecordDirectTrade(accountID string, investment decimal.Decimal, in TradeInput) (*domain.TradeOutcome, *FanoutResult, error) {
	if !investment.IsPositive() {
		return nil, nil, domain.ErrInvalidAmount
	}
	if !in.Status.Valid() {
		return nil, nil, domain.ErrInvalidTradeStatus
	}
	if _, err := uc.AccountRepo.GetAccountByID(accountID); err != nil {
		return nil, nil, err
	}

	reference, err := tradeReference("UD")
	if err != nil {
		return nil, nil, err
	}

	outcome := &domain.TradeOutcome{
		Kind:              domain.TradeDirect,
		AccountID:         accountID,
		Market:            in.Market,
		Direction:         in.Direction,
		Duration:          in.Duration,
		BaseAmount:        in.BaseAmount,
		InvestmentAmount:  investment,
		EntryPrice:        in.EntryPrice,
		ExitPrice:         in.ExitPrice,
		ProfitLossPercent: in.ProfitLossPercent,
		Status:            in.Status,
		Notes:             in.Notes,
		Reference:         reference,
		OpenedAt:          in.OpenedAt,
	}
	if in.Status == domain.TradeClosed {
		now := time.Now()
		outcome.ClosedAt = &now
	}

	if err := uc.TradeRepo.CreateTradeOutcome(outcome); err != nil {
		uc.recordError("record_direct_trade")
		return nil, nil, fmt.Errorf("creating trade outcome: %w", err)
	}
	uc.recordOutcome(outcome.Kind, outcome.Status)

	if outcome.Status != domain.TradeClosed {
		return outcome, nil, nil
	}

	res, err := uc.applyOutcome(outcome)
	if err != nil {
		uc.recordError("record_direct_trade")
		return nil, nil, err
	}
	return outcome, res, nil
}

// BulkRecordDirectTrade records the same trade for many accounts, each
// with the same investment amount. One account's failure does not stop
// the rest.
func (uc *DefaultCopyTradingUsecase) BulkRecordDirectTrade(accountIDs []string, investment decimal.Decimal, in TradeInput) ([]*domain.TradeOutcome, []domain.AccountError, error) {
	if !investment.IsPositive() {
		return nil, nil, domain.ErrInvalidAmount
	}
	if !in.Status.Valid() {
		return nil, nil, domain.ErrInvalidTradeStatus
	}

	var outcomes []*domain.TradeOutcome
	var failed []domain.AccountError
	for _, accountID := range accountIDs {
		outcome, _, err := uc.RecordDirectTrade(accountID, investment, in)
		if err != nil {
			failed = append(failed, domain.AccountError{AccountID: accountID, Message: err.Error()})
			continue
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, failed, nil
}
