package store

import (
	"context"
	"fmt"

	"pneuma-faq-bot/config"
	"pneuma-faq-bot/internal/deal/repository"
	dealMemory "pneuma-faq-bot/internal/deal/repository/memory"
	dealPostgre "pneuma-faq-bot/internal/deal/repository/postgre"
	dealRedis "pneuma-faq-bot/internal/deal/repository/redis"
	"pneuma-faq-bot/internal/model"
	"pneuma-faq-bot/pkg/log"
	pkgPostgres "pneuma-faq-bot/pkg/postgres"
	pkgRedis "pneuma-faq-bot/pkg/redis"
)

// Store is an opened deals backend.
type Store struct {
	Repository repository.Repository
	// Backend is the deals.source value that was opened.
	Backend string
	// Ping is nil for the in-memory backend.
	Ping  func(ctx context.Context) error
	Close func() error
}

// Open connects the backend selected by cfg.Source. seed is loaded into the
// in-memory backend; use Seed for the others.
func Open(ctx context.Context, cfg config.DealsConfig, seed []model.Deal, l log.Logger) (Store, error) {
	switch cfg.Source {
	case config.DealsSourceRedis:
		client, err := pkgRedis.Connect(ctx, pkgRedis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return Store{}, err
		}
		return Store{
			Repository: dealRedis.New(client, cfg.Redis.Prefix, l),
			Backend:    config.DealsSourceRedis,
			Ping:       func(ctx context.Context) error { return client.Ping(ctx).Err() },
			Close:      client.Close,
		}, nil

	case config.DealsSourcePostgres:
		db, err := pkgPostgres.Connect(ctx, pkgPostgres.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			DBName:   cfg.Postgres.DBName,
			SSLMode:  cfg.Postgres.SSLMode,
		})
		if err != nil {
			return Store{}, err
		}
		return Store{
			Repository: dealPostgre.New(db, l),
			Backend:    config.DealsSourcePostgres,
			Ping:       db.PingContext,
			Close:      db.Close,
		}, nil

	case config.DealsSourceMemory, "":
		return Store{
			Repository: dealMemory.New(l, seed),
			Backend:    config.DealsSourceMemory,
			Close:      func() error { return nil },
		}, nil

	default:
		return Store{}, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// Seed upserts deals one by one and returns how many were written.
func Seed(ctx context.Context, repo repository.Repository, deals []model.Deal) (int, error) {
	for i, d := range deals {
		if _, err := repo.SaveDeal(ctx, repository.SaveDealOptions{Deal: d}); err != nil {
			return i, fmt.Errorf("seed deal %s: %w", d.ID, err)
		}
	}
	return len(deals), nil
}
