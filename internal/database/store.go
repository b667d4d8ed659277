package database

import (
	"context"
	"fmt"
	"log/slog"
	"trendx-service/internal/repository"
)

// Store owns the record store connection for the process lifetime. It is
// opened once at startup and closed on shutdown.
type Store struct {
	Driver string
	Repos  repository.Repositories

	closeFn func(context.Context) error
}

func OpenStore(ctx context.Context, cfg *Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.StoreDriver {
	case DriverMongo:
		client, err := ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to mongo", "database", cfg.MongoDatabase)

		return &Store{
			Driver:  DriverMongo,
			Repos:   repository.NewMongoRepositories(client.Database(cfg.MongoDatabase)),
			closeFn: client.Disconnect,
		}, nil

	case DriverPostgres:
		pool, err := ConnectPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to postgres", "host", cfg.Host, "database", cfg.DBName)

		if err := Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}

		return &Store{
			Driver: DriverPostgres,
			Repos:  repository.NewPostgresRepositories(pool),
			closeFn: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case DriverMemory:
		logger.Warn("using in-memory store, data is lost on exit")
		return &Store{
			Driver:  DriverMemory,
			Repos:   repository.NewMemoryRepositories(),
			closeFn: func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func (s *Store) Close(ctx context.Context) error {
	return s.closeFn(ctx)
}
