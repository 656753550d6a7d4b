package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultTradeOutcomeRepository struct {
	DB *gorm.DB
}

func NewDefaultTradeOutcomeRepository(db *gorm.DB) *DefaultTradeOutcomeRepository {
	return &DefaultTradeOutcomeRepository{DB: db}
}

func (r *DefaultTradeOutcomeRepository) CreateTradeOutcome(outcome *domain.TradeOutcome) error {
	if outcome.ID == "" {
		outcome.ID = uuid.NewString()
	}
	model := mappers.ToGORMTradeOutcome(outcome)
	return r.DB.Create(model).Error
}

func (r *DefaultTradeOutcomeRepository) GetTradeOutcomeByID(outcomeID string) (*domain.TradeOutcome, error) {
	var model models.TradeOutcomeModel
	if err := r.DB.First(&model, "id = ?", outcomeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTradeOutcomeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTradeOutcome(&model), nil
}

func (r *DefaultTradeOutcomeRepository) CloseTradeOutcome(outcomeID string, exitPrice, profitLossPercent decimal.Decimal, closedAt time.Time) error {
	res := r.DB.Model(&models.TradeOutcomeModel{}).
		Where("id = ? AND status = ?", outcomeID, domain.TradeOpen).
		Updates(map[string]interface{}{
			"status":              domain.TradeClosed,
			"exit_price":          exitPrice,
			"profit_loss_percent": profitLossPercent,
			"closed_at":           closedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTradeAlreadyClosed
	}
	return nil
}

func (r *DefaultTradeOutcomeRepository) MarkFannedOut(outcomeID string, at time.Time) error {
	res := r.DB.Model(&models.TradeOutcomeModel{}).
		Where("id = ? AND fanned_out_at IS NULL", outcomeID).
		Update("fanned_out_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTradeAlreadyApplied
	}
	return nil
}
