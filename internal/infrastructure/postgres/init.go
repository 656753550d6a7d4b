package postgres

import (
	"log"

	"github.com/LavaJover/shvark-brokerage-service/internal/config"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.BrokerageConfig) *gorm.DB {
	dsn := cfg.LedgerDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.AccountModel{},
		&models.TransactionModel{},
		&models.TraderModel{},
		&models.CopyRelationshipModel{},
		&models.TradeOutcomeModel{},
		&models.NotificationModel{},
	)

	return db
}
