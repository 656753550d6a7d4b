package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/LavaJover/shvark-brokerage-service/internal/app"
	"github.com/LavaJover/shvark-brokerage-service/internal/config"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if err := migrate.RunMigrations(db, cfg.LedgerDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	port := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.NotificationsTopic)
	pub := kafka.NewNotificationEventPublisher(port, cfg.AdminEmail)

	ledgerMetrics := metrics.NewLedgerMetrics()

	application := app.New(cfg, db, pub, ledgerMetrics)

	// Scheduled tier reconciliation
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.TierSync.Schedule, func() {
		report, err := application.TierSync.Run(context.Background(), cfg.TierSync.Apply)
		if err != nil {
			slog.Error("scheduled tier sync failed", "error", err.Error())
			return
		}
		slog.Info("scheduled tier sync done",
			"total", report.Total,
			"updated", report.Updated,
			"errors", len(report.Errors),
			"applied", report.Applied,
		)
	}); err != nil {
		log.Fatalf("failed to schedule tier sync: %v", err)
	}
	scheduler.Start()
	slog.Info("tier sync scheduled", "schedule", cfg.TierSync.Schedule, "apply", cfg.TierSync.Apply)

	addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
	http.Handle("/metrics", promhttp.Handler())
	log.Printf("metrics server started on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
