package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/cvmaker/internal/config"
	"github.com/jonathan/cvmaker/internal/storage"
	"github.com/jonathan/cvmaker/internal/store"
)

// loadAppConfig builds the effective configuration: environment variables
// over config-file values, with built-in fallbacks applied last.
func loadAppConfig() (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newPersister selects the storage backend. The returned closer releases
// backend connections; for the file backend it is a no-op.
func newPersister(ctx context.Context, cfg config.Config) (storage.Persister, func(), error) {
	switch cfg.Storage {
	case config.StorageRedis:
		rs, err := storage.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return rs, func() { _ = rs.Close() }, nil
	case config.StoragePostgres:
		ps, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return ps, func() { ps.Close() }, nil
	default:
		return storage.NewFileStore(cfg.StateDir), func() {}, nil
	}
}

// newStore loads the persisted document into a fresh store.
func newStore(ctx context.Context, cfg config.Config, log *logrus.Logger) (*store.Store, func(), error) {
	persister, closer, err := newPersister(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return store.New(ctx, persister, store.WithLogger(log)), closer, nil
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
