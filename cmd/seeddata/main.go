package main

// One-shot seeding tool for deployments that run with SEED_ON_START=false.
// Connects to the database, seeds the initial catalog and sales history if
// the database is empty, and runs the pending data migration.

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/config"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/infra"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	bootstrap := service.NewBootstrapService(
		repository.NewProductRepository(db),
		repository.NewSaleRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewGoalRepository(db),
		repository.NewSettingsRepository(db),
		true,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := bootstrap.Ensure(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("database seeded")
}
