package mappers

import (
	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
)

func ToDomainAccount(model *models.AccountModel) *domain.Account {
	return &domain.Account{
		ID:                  model.ID,
		Email:               model.Email,
		Balance:             model.Balance,
		Profit:              model.Profit,
		CurrentTier:         model.CurrentTier,
		NextTier:            model.NextTier,
		NextAmountToUpgrade: model.NextAmountToUpgrade,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMAccount(acc *domain.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:                  acc.ID,
		Email:               acc.Email,
		Balance:             acc.Balance,
		Profit:              acc.Profit,
		CurrentTier:         acc.CurrentTier,
		NextTier:            acc.NextTier,
		NextAmountToUpgrade: acc.NextAmountToUpgrade,
		CreatedAt:           acc.CreatedAt,
		UpdatedAt:           acc.UpdatedAt,
	}
}
