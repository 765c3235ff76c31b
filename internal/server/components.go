package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/games-api/internal/catalog"
	"github.com/preston-bernstein/games-api/internal/config"
	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/metrics"
	"github.com/preston-bernstein/games-api/internal/store"
)

// buildStore selects the games store and loads it. A failed load is not
// fatal: the store starts empty and the failure has already been logged.
func buildStore(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) store.Store {
	var s store.Store
	switch cfg.Games.Storage {
	case config.StorageMemory:
		logging.Info(logger, "games store in memory only", logging.FieldCount, len(store.SeedGames()))
		s = store.NewSeededMemoryStore(cfg.Games.PolicyYear)
	default:
		logging.Info(logger, "games store file backed", logging.FieldFile, cfg.Games.File)
		s = store.NewFileStore(cfg.Games.File, cfg.Games.PolicyYear, logger, recorder)
	}
	if err := s.Load(ctx); err != nil {
		logging.Warn(logger, "continuing with empty games collection")
	}
	return s
}

func buildCatalog(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *catalog.Client {
	return catalog.NewClient(catalog.Config{
		BaseURL:       cfg.Catalog.BaseURL,
		Timeout:       cfg.Catalog.Timeout,
		RatePerSecond: cfg.Catalog.RatePerSecond,
		Burst:         cfg.Catalog.Burst,
		Logger:        logger,
		Metrics:       recorder,
	})
}

// readiness reports whether the store has finished loading when it can tell.
func readiness(s store.Store) func() bool {
	if l, ok := s.(interface{ Loaded() bool }); ok {
		return l.Loaded
	}
	return nil
}
