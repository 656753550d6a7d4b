package copytrading

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
)

// RecordTraderTrade persists a trade outcome against a trader. When the
// outcome is closed at creation its P/L is fanned out to every copier
// active at that moment; an open outcome is stored untouched and applied
// later through CloseTradeOutcome.
func (uc *DefaultCopyTradingUsecase) RecordTraderTrade(traderID string, in TradeInput) (*domain.TradeOutcome, *FanoutResult, error) {
	if err := in.validate(); err != nil {
		return nil, nil, err
	}
	if _, err := uc.TraderRepo.GetTraderByID(traderID); err != nil {
		return nil, nil, err
	}

	reference, err := tradeReference("TR")
	if err != nil {
		return nil, nil, err
	}

	outcome := &domain.TradeOutcome{
		Kind:              domain.TradeTraderFanout,
		TraderID:          traderID,
		Market:            in.Market,
		Direction:         in.Direction,
		Duration:          in.Duration,
		BaseAmount:        in.BaseAmount,
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
		uc.recordError("record_trader_trade")
		return nil, nil, fmt.Errorf("creating trade outcome: %w", err)
	}
	uc.recordOutcome(outcome.Kind, outcome.Status)

	if outcome.Status != domain.TradeClosed {
		return outcome, nil, nil
	}

	res, err := uc.applyOutcome(outcome)
	if err != nil {
		uc.recordError("record_trader_trade")
		return nil, nil, err
	}
	return outcome, res, nil
}

// CloseTradeOutcome closes an open outcome with its final exit price and
// percentage, then runs the same one-time application as closing at
// creation. An outcome whose effect was already applied is rejected.
func (uc *DefaultCopyTradingUsecase) CloseTradeOutcome(outcomeID string, exitPrice, profitLossPercent decimal.Decimal, closedAt time.Time) (*domain.TradeOutcome, *FanoutResult, error) {
	outcome, err := uc.TradeRepo.GetTradeOutcomeByID(outcomeID)
	if err != nil {
		return nil, nil, err
	}
	if outcome.FannedOutAt != nil {
		return nil, nil, domain.ErrTradeAlreadyApplied
	}
	if outcome.Status == domain.TradeClosed {
		return nil, nil, domain.ErrTradeAlreadyClosed
	}

	if err := uc.TradeRepo.CloseTradeOutcome(outcomeID, exitPrice, profitLossPercent, closedAt); err != nil {
		uc.recordError("close_trade_outcome")
		return nil, nil, fmt.Errorf("closing trade outcome: %w", err)
	}
	outcome.Status = domain.TradeClosed
	outcome.ExitPrice = exitPrice
	outcome.ProfitLossPercent = profitLossPercent
	outcome.ClosedAt = &closedAt

	res, err := uc.applyOutcome(outcome)
	if err != nil {
		uc.recordError("close_trade_outcome")
		return nil, nil, err
	}
	return outcome, res, nil
}

// applyOutcome applies a closed outcome's P/L exactly once and stamps
// FannedOutAt. Fan-out outcomes hit every copier active right now; direct
// outcomes hit their single account. Per-account failures are collected
// and the rest of the batch proceeds.
func (uc *DefaultCopyTradingUsecase) applyOutcome(outcome *domain.TradeOutcome) (*FanoutResult, error) {
	pl := outcome.ProfitLoss()
	res := &FanoutResult{ProfitLoss: pl}

	var accountIDs []string
	if outcome.Kind == domain.TradeDirect {
		accountIDs = []string{outcome.AccountID}
	} else {
		rels, err := uc.CopyRepo.ListActiveByTrader(outcome.TraderID)
		if err != nil {
			return nil, fmt.Errorf("listing active copiers: %w", err)
		}
		accountIDs = make([]string, 0, len(rels))
		for _, rel := range rels {
			accountIDs = append(accountIDs, rel.AccountID)
		}
	}

	for _, accountID := range accountIDs {
		app, err := uc.AccountRepo.ApplyTradeResult(accountID, pl)
		if err != nil {
			slog.Error("trade application failed",
				"outcome_id", outcome.ID,
				"account_id", accountID,
				"pl", pl.StringFixed(2),
				"error", err.Error(),
			)
			res.Failed = append(res.Failed, domain.AccountError{AccountID: accountID, Message: err.Error()})
			continue
		}
		res.Applied = append(res.Applied, accountID)
		uc.notifyTradeResult(accountID, outcome, pl, app)
	}
	uc.recordFanout(len(res.Applied), len(res.Failed))

	at := time.Now()
	if err := uc.TradeRepo.MarkFannedOut(outcome.ID, at); err != nil {
		return nil, fmt.Errorf("stamping trade application: %w", err)
	}
	outcome.FannedOutAt = &at

	slog.Info("trade outcome applied",
		"outcome_id", outcome.ID,
		"kind", outcome.Kind,
		"pl", pl.StringFixed(2),
		"applied", len(res.Applied),
		"failed", len(res.Failed),
	)
	return res, nil
}

func (uc *DefaultCopyTradingUsecase) notifyTradeResult(accountID string, outcome *domain.TradeOutcome, pl decimal.Decimal, app *domain.TradeApplication) {
	title := "Trade Profit"
	verb := "gained"
	if pl.IsNegative() {
		title = "Trade Loss"
		verb = "lost"
	}
	uc.notify(accountID, title,
		fmt.Sprintf("You %s $%s on %s %s", verb, pl.Abs().StringFixed(2), outcome.Market, outcome.Direction),
		fmt.Sprintf("Market: %s\nDirection: %s\nEntry: %s\nExit: %s\nP/L: %s%%  ($%s)\nNew balance: $%s",
			outcome.Market, outcome.Direction,
			outcome.EntryPrice.String(), outcome.ExitPrice.String(),
			outcome.ProfitLossPercent.StringFixed(2), pl.StringFixed(2),
			app.NewBalance.StringFixed(2)),
	)
}

func (in *TradeInput) validate() error {
	if !in.BaseAmount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if !in.Status.Valid() {
		return domain.ErrInvalidTradeStatus
	}
	return nil
}

func tradeReference(prefix string) (string, error) {
	idGenerator, err := nanoid.Standard(12)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(idGenerator())), nil
}
