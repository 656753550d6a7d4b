package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/LavaJover/shvark-brokerage-service/internal/app"
	"github.com/LavaJover/shvark-brokerage-service/internal/config"
	"github.com/LavaJover/shvark-brokerage-service/internal/infrastructure/postgres"
	"github.com/joho/godotenv"
)

func main() {
	apply := flag.Bool("apply", false, "write the recomputed tier fields instead of reporting them")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()
	db := postgres.MustInitDB(cfg)

	application := app.New(cfg, db, nil, nil)

	if !*apply {
		fmt.Println("DRY RUN - no changes will be made. Pass --apply to write.")
	}

	report, err := application.TierSync.Run(context.Background(), *apply)
	if err != nil {
		log.Fatalf("tier sync failed: %v", err)
	}

	for _, change := range report.Changes {
		action := "WOULD UPDATE"
		if report.Applied {
			action = "UPDATED"
		}
		fmt.Printf("%s %s: %s -> %s (deposits: $%s, next: %s at $%s)\n",
			action, change.Email, change.OldTier, change.NewTier,
			change.TotalDeposits.StringFixed(2), change.NextTier, change.NextAmount.StringFixed(2))
	}
	for _, accErr := range report.Errors {
		fmt.Printf("ERROR %s: %s\n", accErr.Email, accErr.Message)
	}

	fmt.Println()
	fmt.Printf("Accounts scanned:  %d\n", report.Total)
	fmt.Printf("Already correct:   %d\n", report.AlreadyCorrect)
	if report.Applied {
		fmt.Printf("Updated:           %d\n", report.Updated)
	} else {
		fmt.Printf("Would update:      %d\n", report.Updated)
	}
	fmt.Printf("Errors:            %d\n", len(report.Errors))

	if len(report.Errors) > 0 {
		os.Exit(1)
	}
}
