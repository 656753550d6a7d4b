package repository

import (
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(txn *domain.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	model := mappers.ToGORMTransaction(txn)
	return r.DB.Create(model).Error
}

func (r *DefaultTransactionRepository) GetTransactionByID(txnID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "id = ?", txnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

// MutateWithAccount runs one admin edit as a single DB transaction: the
// account row is locked, the caller computes the new transaction fields and
// the balance delta against the locked state, and both writes commit
// together. The delta is truncated at the zero-balance floor when the
// mutation asks for the clamp.
func (r *DefaultTransactionRepository) MutateWithAccount(txnID string, fn domain.MutationFunc) (*domain.MutationResult, error) {
	var result *domain.MutationResult
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var txnModel models.TransactionModel
		if err := tx.First(&txnModel, "id = ?", txnID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTransactionNotFound
			}
			return err
		}

		var accModel models.AccountModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&accModel, "id = ?", txnModel.AccountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		txn := mappers.ToDomainTransaction(&txnModel)
		acc := mappers.ToDomainAccount(&accModel)
		oldStatus, oldAmount := txn.Status, txn.Amount

		mut, err := fn(txn, acc)
		if err != nil {
			return err
		}

		applied := mut.BalanceDelta
		newBalance := acc.Balance.Add(applied)
		clamped := false
		if mut.ClampBalance && newBalance.IsNegative() {
			slog.Warn("balance deduction truncated at zero",
				"transaction_id", txnID,
				"account_id", acc.ID,
				"balance", acc.Balance.StringFixed(2),
				"delta", mut.BalanceDelta.StringFixed(2),
			)
			applied = acc.Balance.Neg()
			newBalance = decimal.Zero
			clamped = true
		}

		if err := tx.Model(&txnModel).Updates(map[string]interface{}{
			"status":      mut.Status,
			"amount":      mut.Amount,
			"currency":    mut.Currency,
			"description": mut.Description,
			"reference":   mut.Reference,
		}).Error; err != nil {
			return err
		}
		if !applied.IsZero() {
			if err := tx.Model(&accModel).Update("balance", newBalance).Error; err != nil {
				return err
			}
		}

		txn.Status = mut.Status
		txn.Amount = mut.Amount
		txn.Currency = mut.Currency
		txn.Description = mut.Description
		txn.Reference = mut.Reference
		acc.Balance = newBalance

		result = &domain.MutationResult{
			Transaction:  txn,
			Account:      acc,
			OldStatus:    oldStatus,
			OldAmount:    oldAmount,
			AppliedDelta: applied,
			Clamped:      clamped,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *DefaultTransactionRepository) SumCompletedDeposits(accountID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.Model(&models.TransactionModel{}).
		Where("account_id = ? AND kind = ? AND status = ?",
			accountID, domain.KindDeposit, domain.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
