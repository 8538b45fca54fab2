package main

import (
	"log/slog"

	"orgs/config"
	"orgs/internal/domain/repository"
	"orgs/internal/errors"
	"orgs/internal/infra/persistence/memory"
	"orgs/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type repositoriesParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type repositoriesResult struct {
	fx.Out

	Organizations repository.OrganizationRepository
	Buildings     repository.BuildingRepository
	Activities    repository.ActivityRepository
}

// newRepositories selects the storage driver. The memory driver never opens a
// database connection.
func newRepositories(params repositoriesParams) (repositoriesResult, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		store, err := memory.New(params.Config)
		if err != nil {
			return repositoriesResult{}, err
		}
		params.Logger.Info("Serving organizations from fixture",
			slog.String("fixture", params.Config.Storage.FixturePath),
		)

		return repositoriesResult{
			Organizations: store.OrganizationRepository(),
			Buildings:     store.BuildingRepository(),
			Activities:    store.ActivityRepository(),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return repositoriesResult{}, err
		}

		return repositoriesResult{
			Organizations: postgres.NewOrganizationRepository(db),
			Buildings:     postgres.NewBuildingRepository(db),
			Activities:    postgres.NewActivityRepository(db),
		}, nil

	default:
		return repositoriesResult{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}
