package mappers

import (
	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
)

func ToDomainTradeOutcome(model *models.TradeOutcomeModel) *domain.TradeOutcome {
	return &domain.TradeOutcome{
		ID:                model.ID,
		Kind:              model.Kind,
		TraderID:          model.TraderID,
		AccountID:         model.AccountID,
		Market:            model.Market,
		Direction:         model.Direction,
		Duration:          model.Duration,
		BaseAmount:        model.BaseAmount,
		InvestmentAmount:  model.InvestmentAmount,
		EntryPrice:        model.EntryPrice,
		ExitPrice:         model.ExitPrice,
		ProfitLossPercent: model.ProfitLossPercent,
		Status:            model.Status,
		Notes:             model.Notes,
		Reference:         model.Reference,
		OpenedAt:          model.OpenedAt,
		ClosedAt:          model.ClosedAt,
		FannedOutAt:       model.FannedOutAt,
	}
}

func ToGORMTradeOutcome(outcome *domain.TradeOutcome) *models.TradeOutcomeModel {
	return &models.TradeOutcomeModel{
		ID:                outcome.ID,
		Kind:              outcome.Kind,
		TraderID:          outcome.TraderID,
		AccountID:         outcome.AccountID,
		Market:            outcome.Market,
		Direction:         outcome.Direction,
		Duration:          outcome.Duration,
		BaseAmount:        outcome.BaseAmount,
		InvestmentAmount:  outcome.InvestmentAmount,
		EntryPrice:        outcome.EntryPrice,
		ExitPrice:         outcome.ExitPrice,
		ProfitLossPercent: outcome.ProfitLossPercent,
		Status:            outcome.Status,
		Notes:             outcome.Notes,
		Reference:         outcome.Reference,
		OpenedAt:          outcome.OpenedAt,
		ClosedAt:          outcome.ClosedAt,
		FannedOutAt:       outcome.FannedOutAt,
	}
}

func ToGORMNotification(n *domain.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:          n.ID,
		AccountID:   n.AccountID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		FullDetails: n.FullDetails,
		CreatedAt:   n.CreatedAt,
	}
}
