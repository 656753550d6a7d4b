package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultCopyRelationshipRepository struct {
	DB *gorm.DB
}

func NewDefaultCopyRelationshipRepository(db *gorm.DB) *DefaultCopyRelationshipRepository {
	return &DefaultCopyRelationshipRepository{DB: db}
}

func (r *DefaultCopyRelationshipRepository) ListActiveByTrader(traderID string) ([]*domain.CopyRelationship, error) {
	var relModels []models.CopyRelationshipModel
	if err := r.DB.Where("trader_id = ? AND is_active = ?", traderID, true).
		Order("started_at").Find(&relModels).Error; err != nil {
		return nil, err
	}
	rels := make([]*domain.CopyRelationship, 0, len(relModels))
	for i := range relModels {
		rels = append(rels, mappers.ToDomainCopyRelationship(&relModels[i]))
	}
	return rels, nil
}

func (r *DefaultCopyRelationshipRepository) GetActive(accountID, traderID string) (*domain.CopyRelationship, error) {
	var model models.CopyRelationshipModel
	err := r.DB.Where("account_id = ? AND trader_id = ? AND is_active = ?",
		accountID, traderID, true).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCopyNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCopyRelationship(&model), nil
}

func (r *DefaultCopyRelationshipRepository) CreateRelationship(rel *domain.CopyRelationship) error {
	if rel.ID == "" {
		rel.ID = uuid.NewString()
	}
	model := mappers.ToGORMCopyRelationship(rel)
	if err := r.DB.Create(model).Error; err != nil {
		// the partial unique index on (account_id, trader_id) WHERE is_active
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrAlreadyCopying
		}
		return err
	}
	return nil
}

func (r *DefaultCopyRelationshipRepository) RequestCancel(relID string, at time.Time) error {
	res := r.DB.Model(&models.CopyRelationshipModel{}).
		Where("id = ? AND is_active = ?", relID, true).
		Updates(map[string]interface{}{
			"cancel_requested":    true,
			"cancel_requested_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCopyNotFound
	}
	return nil
}

func (r *DefaultCopyRelationshipRepository) Deactivate(relID string, at time.Time) error {
	res := r.DB.Model(&models.CopyRelationshipModel{}).
		Where("id = ? AND is_active = ?", relID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"stopped_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCopyNotFound
	}
	return nil
}

func (r *DefaultCopyRelationshipRepository) ListZeroInvestment() ([]*domain.CopyRelationship, error) {
	var relModels []models.CopyRelationshipModel
	if err := r.DB.Where("investment_amount = 0").
		Order("started_at").Find(&relModels).Error; err != nil {
		return nil, err
	}
	rels := make([]*domain.CopyRelationship, 0, len(relModels))
	for i := range relModels {
		rels = append(rels, mappers.ToDomainCopyRelationship(&relModels[i]))
	}
	return rels, nil
}

func (r *DefaultCopyRelationshipRepository) SetInvestmentAmount(relID string, amount decimal.Decimal) error {
	res := r.DB.Model(&models.CopyRelationshipModel{}).
		Where("id = ?", relID).
		Update("investment_amount", amount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCopyNotFound
	}
	return nil
}

type DefaultTraderRepository struct {
	DB *gorm.DB
}

func NewDefaultTraderRepository(db *gorm.DB) *DefaultTraderRepository {
	return &DefaultTraderRepository{DB: db}
}

func (r *DefaultTraderRepository) GetTraderByID(traderID string) (*domain.Trader, error) {
	var model models.TraderModel
	if err := r.DB.First(&model, "id = ?", traderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTraderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTrader(&model), nil
}

func (r *DefaultTraderRepository) AdjustCopierCount(traderID string, delta int) error {
	res := r.DB.Model(&models.TraderModel{}).
		Where("id = ?", traderID).
		Update("copier_count", gorm.Expr("GREATEST(copier_count + ?, 0)", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTraderNotFound
	}
	return nil
}
