package repository

import (
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultAccountRepository struct {
	DB *gorm.DB
}

func NewDefaultAccountRepository(db *gorm.DB) *DefaultAccountRepository {
	return &DefaultAccountRepository{DB: db}
}

func (r *DefaultAccountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	var model models.AccountModel
	if err := r.DB.First(&model, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mappers.ToDomainAccount(&model), nil
}

func (r *DefaultAccountRepository) ListAccountIDs() ([]string, error) {
	var ids []string
	if err := r.DB.Model(&models.AccountModel{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DefaultAccountRepository) GetAccountsByIDs(ids []string) ([]*domain.Account, error) {
	var accountModels []models.AccountModel
	if err := r.DB.Where("id IN ?", ids).Order("id").Find(&accountModels).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, mappers.ToDomainAccount(&accountModels[i]))
	}
	return accounts, nil
}

func (r *DefaultAccountRepository) UpdateTierFields(accountID string, current, next domain.TierKey, nextAmount decimal.Decimal) error {
	res := r.DB.Model(&models.AccountModel{}).Where("id = ?", accountID).Updates(map[string]interface{}{
		"current_tier":           current,
		"next_tier":              next,
		"next_amount_to_upgrade": nextAmount,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *DefaultAccountRepository) CreditEarnings(accountID string, amount decimal.Decimal, destination domain.EarningsDestination) error {
	column := "balance"
	if destination == domain.EarningsToProfit {
		column = "profit"
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.AccountModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}
		return tx.Model(&model).Update(column, gorm.Expr(column+" + ?", amount)).Error
	})
}

// ApplyTradeResult moves the account by a trade's P/L under a row lock.
// Profit always takes the full signed amount; the balance floors at zero.
func (r *DefaultAccountRepository) ApplyTradeResult(accountID string, pl decimal.Decimal) (*domain.TradeApplication, error) {
	var applied domain.TradeApplication
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.AccountModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		newProfit := model.Profit.Add(pl)
		newBalance := model.Balance.Add(pl)
		if newBalance.IsNegative() {
			slog.Warn("trade loss exceeds balance, flooring at zero",
				"account_id", accountID,
				"balance", model.Balance.StringFixed(2),
				"pl", pl.StringFixed(2),
			)
			newBalance = decimal.Zero
		}

		if err := tx.Model(&model).Updates(map[string]interface{}{
			"balance": newBalance,
			"profit":  newProfit,
		}).Error; err != nil {
			return err
		}
		applied = domain.TradeApplication{NewBalance: newBalance, NewProfit: newProfit}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &applied, nil
}
