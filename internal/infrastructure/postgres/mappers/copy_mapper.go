package mappers

import (
	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
)

func ToDomainCopyRelationship(model *models.CopyRelationshipModel) *domain.CopyRelationship {
	return &domain.CopyRelationship{
		ID:                  model.ID,
		AccountID:           model.AccountID,
		TraderID:            model.TraderID,
		InvestmentAmount:    model.InvestmentAmount,
		MinThresholdAtStart: model.MinThresholdAtStart,
		IsActive:            model.IsActive,
		CancelRequested:     model.CancelRequested,
		StartedAt:           model.StartedAt,
		CancelRequestedAt:   model.CancelRequestedAt,
		StoppedAt:           model.StoppedAt,
	}
}

func ToGORMCopyRelationship(rel *domain.CopyRelationship) *models.CopyRelationshipModel {
	return &models.CopyRelationshipModel{
		ID:                  rel.ID,
		AccountID:           rel.AccountID,
		TraderID:            rel.TraderID,
		InvestmentAmount:    rel.InvestmentAmount,
		MinThresholdAtStart: rel.MinThresholdAtStart,
		IsActive:            rel.IsActive,
		CancelRequested:     rel.CancelRequested,
		StartedAt:           rel.StartedAt,
		CancelRequestedAt:   rel.CancelRequestedAt,
		StoppedAt:           rel.StoppedAt,
	}
}

func ToDomainTrader(model *models.TraderModel) *domain.Trader {
	return &domain.Trader{
		ID:                  model.ID,
		Name:                model.Name,
		CopierCount:         model.CopierCount,
		MinAccountThreshold: model.MinAccountThreshold,
		IsActive:            model.IsActive,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}
