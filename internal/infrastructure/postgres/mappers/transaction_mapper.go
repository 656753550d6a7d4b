package mappers

import (
	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:          model.ID,
		AccountID:   model.AccountID,
		Kind:        model.Kind,
		Amount:      model.Amount,
		Currency:    model.Currency,
		Status:      model.Status,
		Reference:   model.Reference,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMTransaction(txn *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:          txn.ID,
		AccountID:   txn.AccountID,
		Kind:        txn.Kind,
		Amount:      txn.Amount,
		Currency:    txn.Currency,
		Status:      txn.Status,
		Reference:   txn.Reference,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}
