package main

import (
	"log/slog"

	"autoconnect/config"
	"autoconnect/internal/domain/constants"
	"autoconnect/internal/domain/repository"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
	"autoconnect/internal/infra/cache"
	"autoconnect/internal/infra/persistence/memory"
	"autoconnect/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type storageResult struct {
	fx.Out

	Repo      repository.AddedVehicleRepository
	TxManager repository.TransactionManager
	Directory service.DirectoryService
}

// newStorage builds the request store and directory selected by storage.driver,
// wrapping the directory with the Redis cache when redis is configured.
func newStorage(params storageParams) (storageResult, error) {
	var result storageResult

	switch params.Config.Storage.Driver {
	case constants.StorageDriverMemory:
		store := memory.NewStore()
		if path := params.Config.Storage.SeedFile; path != "" {
			seed, err := memory.LoadSeed(path)
			if err != nil {
				return result, err
			}
			store.Apply(seed)
			params.Logger.Info("Memory directory seeded",
				slog.String("path", path),
				slog.Int("vehicles", len(seed.Vehicles)),
				slog.Int("users", len(seed.Users)),
			)
		}

		result.Repo = store.Requests()
		result.TxManager = store
		result.Directory = store.Directory()

	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return result, err
		}

		result.Repo = postgres.NewAddedVehicleRepository(db)
		result.TxManager = postgres.NewTransactionManager(db)
		result.Directory = postgres.NewDirectoryRepository(db)

	default:
		return result, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}

	if params.Config.Redis == nil {
		return result, nil
	}

	client, err := cache.NewRedisClient(cache.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return result, err
	}
	result.Directory = cache.NewDirectoryCache(client, result.Directory, params.Config.Redis.DirectoryTTL, params.Logger)

	return result, nil
}
