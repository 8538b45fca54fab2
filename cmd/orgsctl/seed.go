package main

import (
	"context"
	"log/slog"
	"os"

	"orgs/config"
	"orgs/internal/domain/repository"
	"orgs/internal/infra/fixture"
	"orgs/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

func runSeed(ctx context.Context, path string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := fixture.Load(path)
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return errors.Wrap(err, "fixture is invalid")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" && cfg.Postgres == nil {
		return errors.New("seed requires DATABASE_URL or a postgres block in config.yaml")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	buildings, activities, organizations := f.Entities()

	txManager := postgres.NewTransactionManager(db)
	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		writer := factory.NewFixtureWriter()
		if err := writer.InsertBuildings(ctx, buildings); err != nil {
			return err
		}
		if err := writer.InsertActivities(ctx, activities); err != nil {
			return err
		}

		return writer.InsertOrganizations(ctx, organizations)
	})
	if err != nil {
		return errors.Wrap(err, "seed failed")
	}

	logger.Info("Fixture loaded",
		slog.String("fixture", path),
		slog.Int("buildings", len(buildings)),
		slog.Int("activities", len(activities)),
		slog.Int("organizations", len(organizations)),
	)

	return nil
}
