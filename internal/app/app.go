package app

import (
	"fmt"
	"time"

	"github.com/tatianab/road-of-life/internal/config"
	"github.com/tatianab/road-of-life/internal/engine"
	"github.com/tatianab/road-of-life/internal/logger"
	"github.com/tatianab/road-of-life/internal/models"
	"go.uber.org/zap"
)

// App bundles what every entry point needs.
type App struct {
	Config *config.Config
	Log    *zap.Logger
	Engine *engine.Engine
	Seed   int64
}

// New builds the logger, loads the catalog and constructs the engine.
func New(cfg *config.Config) (*App, error) {
	log, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}

	catalog, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng, err := engine.NewEngine(catalog,
		engine.WithLogger(log),
		engine.WithSource(engine.NewSeededSource(seed, "consequence")),
		engine.WithFactSource(engine.NewSeededSource(seed, "facts")),
		engine.WithStartingStats(models.StatBlock{Health: cfg.StartHealth, Morale: cfg.StartMorale}),
		engine.WithFactEvery(cfg.FactEvery),
	)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	log.Info("engine ready",
		zap.String("catalog", catalog.Title),
		zap.Int("scenes", len(catalog.Scenes)),
		zap.Int64("seed", seed),
	)
	return &App{Config: cfg, Log: log, Engine: eng, Seed: seed}, nil
}

// Close flushes the logger.
func (a *App) Close() {
	_ = a.Log.Sync()
}

// LoadCatalog reads the story at path, or the embedded one when path is empty.
func LoadCatalog(path string) (*models.Catalog, error) {
	if path == "" {
		return engine.DefaultCatalog()
	}
	return models.LoadCatalog(path)
}
