package config

import (
	"log"
	"os"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

type BrokerageConfig struct {
	Env           string `yaml:"env"`
	MetricsServer `yaml:"metrics_server"`
	LedgerDB      `yaml:"ledger_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	TierSync      `yaml:"tier_sync"`
	Loyalty       `yaml:"loyalty"`
	AdminEmail    string `yaml:"admin_email" env-default:"admin@brokerage.local"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type LedgerDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host               string `yaml:"host"`
	Port               string `yaml:"port"`
	NotificationsTopic string `yaml:"notifications_topic" env-default:"brokerage-notifications"`
}

type TierSync struct {
	ChunkSize int    `yaml:"chunk_size" env-default:"100"`
	Schedule  string `yaml:"schedule" env-default:"0 3 * * *"`
	Apply     bool   `yaml:"apply" env-default:"false"`
}

// Loyalty lists the tier thresholds as minimum total completed deposits.
type Loyalty struct {
	Iron     float64 `yaml:"iron" env-default:"0"`
	Bronze   float64 `yaml:"bronze" env-default:"500"`
	Silver   float64 `yaml:"silver" env-default:"2500"`
	Gold     float64 `yaml:"gold" env-default:"10000"`
	Platinum float64 `yaml:"platinum" env-default:"50000"`
	Diamond  float64 `yaml:"diamond" env-default:"250000"`
}

// TierTable converts the configured thresholds to the domain table.
func (l Loyalty) TierTable() domain.TierTable {
	return domain.NewTierTable([]domain.Tier{
		{Key: domain.TierIron, MinDeposit: decimal.NewFromFloat(l.Iron)},
		{Key: domain.TierBronze, MinDeposit: decimal.NewFromFloat(l.Bronze)},
		{Key: domain.TierSilver, MinDeposit: decimal.NewFromFloat(l.Silver)},
		{Key: domain.TierGold, MinDeposit: decimal.NewFromFloat(l.Gold)},
		{Key: domain.TierPlatinum, MinDeposit: decimal.NewFromFloat(l.Platinum)},
		{Key: domain.TierDiamond, MinDeposit: decimal.NewFromFloat(l.Diamond)},
	})
}

func MustLoad() *BrokerageConfig {

	// Processing env config variable and file
	configPath := os.Getenv("BROKERAGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("BROKERAGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg BrokerageConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
