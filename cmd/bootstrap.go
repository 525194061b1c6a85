package cmd

import (
	"context"
	"fmt"

	"path-mapper/core/config"
	"path-mapper/core/database"
	"path-mapper/core/logger"
	"path-mapper/core/storage"
	"path-mapper/feature/catalog"
	"path-mapper/feature/gamepath"
	"path-mapper/feature/identify"
	"path-mapper/feature/index"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment carries the shared dependencies every command starts from.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// setup loads configuration and opens the database and storage.
// Both connections are optional; commands check for what they need.
func setup() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	env := &environment{cfg: cfg, logger: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		env.db = conn
		logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
	}

	if store, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Optional storage client failed", zap.Error(err))
	} else {
		env.store = store
	}

	return env, nil
}

func (e *environment) opener() *identify.Opener {
	return identify.NewOpener(e.store, e.cfg.Storage.Bucket)
}

// sources lists the identification inputs the sources check verifies.
func (e *environment) sources() []string {
	return []string{e.cfg.Identify.Paths, e.cfg.Identify.BNpc}
}

// identifier builds the catalog index and wires the parser to it.
func (e *environment) identifier(ctx context.Context) (*identify.Identifier, error) {
	if e.db == nil {
		return nil, fmt.Errorf("catalog database is required")
	}

	links, err := e.opener().LoadLinks(ctx, e.cfg.Identify.BNpc)
	if err != nil {
		return nil, err
	}

	provider := catalog.NewSource(e.db, e.store, e.cfg.Storage.Bucket, e.cfg.Identify.GamePrefix)
	ix, err := index.Build(ctx, provider, links, e.logger)
	if err != nil {
		return nil, err
	}

	parser := gamepath.NewParser(provider, e.logger)
	return identify.NewIdentifier(parser, ix, e.logger), nil
}

func (e *environment) close() {
	if e.db != nil {
		if sqlDB, err := e.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = e.logger.Sync()
}
