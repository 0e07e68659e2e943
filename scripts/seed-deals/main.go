package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pneuma-faq-bot/config"
	"pneuma-faq-bot/internal/deal"
	"pneuma-faq-bot/internal/deal/store"
	"pneuma-faq-bot/internal/model"
	"pneuma-faq-bot/pkg/log"
)

// Seeds the configured deals backend (redis or postgres) with the built-in
// deals, or with the deals in a JSON file:
//
//	go run scripts/seed-deals/main.go [path/to/deals.json]
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	if cfg.Deals.Source == config.DealsSourceMemory {
		logger.Fatalf(ctx, "deals.source is %q, nothing to seed", cfg.Deals.Source)
	}

	deals := deal.DefaultSeed()
	if len(os.Args) > 1 {
		deals, err = readDeals(os.Args[1])
		if err != nil {
			logger.Fatalf(ctx, "Failed to read deals: %v", err)
		}
	}

	s, err := store.Open(ctx, cfg.Deals, nil, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open %s: %v", cfg.Deals.Source, err)
	}
	defer s.Close()

	logger.Infof(ctx, "Seeding %d deals into %s...", len(deals), s.Backend)

	n, err := store.Seed(ctx, s.Repository, deals)
	if err != nil {
		logger.Errorf(ctx, "Seed stopped after %d/%d deals: %v", n, len(deals), err)
		return
	}

	logger.Infof(ctx, "Seed complete! %d/%d deals written.", n, len(deals))
}

func readDeals(path string) ([]model.Deal, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var deals []model.Deal
	if err := json.Unmarshal(raw, &deals); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for i, d := range deals {
		if d.ID == "" || d.Title == "" {
			return nil, fmt.Errorf("deal %d: id and title are required", i)
		}
	}
	return deals, nil
}
