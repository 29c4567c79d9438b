package app

import (
	"errors"
	"fmt"

	"github.com/Rorical/RoriMap/internal/config"
	"github.com/Rorical/RoriMap/internal/core"
	"github.com/Rorical/RoriMap/internal/eventbus"
	"github.com/Rorical/RoriMap/internal/i18n"
	"github.com/Rorical/RoriMap/internal/logging"
	"github.com/Rorical/RoriMap/internal/storage"
)

// Services are the non-UI collaborators shared by the TUI and the headless
// commands.
type Services struct {
	Config   *config.Config
	Logger   *logging.Logger
	DB       *storage.DB
	Store    *core.Store
	Importer *core.Importer
}

// OpenServices loads config, opens the log and the database and hydrates a
// store. bus may be nil for headless use.
func OpenServices(configPath string, bus *eventbus.EventBus) (*Services, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogFile(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	db, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	opts := []core.Option{core.WithPersister(db), core.WithLogger(logger)}
	if bus != nil {
		opts = append(opts, core.WithEventBus(bus))
	}
	store := core.NewStore(core.NewMapState(i18n.Match(cfg.Locale)), opts...)
	if err := store.Hydrate(); err != nil {
		_ = db.Close()
		_ = logger.Close()
		return nil, err
	}

	logger.Info("services started", "config", cfg.Path(), "db", cfg.DatabasePath(), "routes", len(cfg.Routes))

	return &Services{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Store:    store,
		Importer: core.NewImporter(store, cfg.Routes, logger),
	}, nil
}

func (s *Services) Close() error {
	return errors.Join(s.DB.Close(), s.Logger.Close())
}
