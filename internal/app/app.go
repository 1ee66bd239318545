package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/stravafeed/internal/config"
	"github.com/rpggio/stravafeed/internal/domain/feed"
	"github.com/rpggio/stravafeed/internal/domain/history"
	"github.com/rpggio/stravafeed/internal/sqlite"
	"github.com/rpggio/stravafeed/internal/strava"
)

// App holds the services shared by every entry point.
type App struct {
	Strava  *strava.Client
	Feed    *feed.Service
	History *history.Service

	db *sqlite.DB
}

// New wires the Strava client, the optional history database and the feed service.
// Extra options are applied to the Strava client after the configured ones.
func New(cfg config.Config, logger *slog.Logger, opts ...strava.Option) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if missing := cfg.Strava.Missing(); len(missing) > 0 {
		logger.Warn("strava credentials not set", "missing", missing)
	}

	a := &App{}

	var repo history.Repository
	if cfg.History.Path != "" {
		if err := ensureDBDir(cfg.History.Path); err != nil {
			return nil, fmt.Errorf("prepare history path: %w", err)
		}
		db, err := sqlite.New(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		a.db = db
		repo = sqlite.NewHistoryRepository(db)
	}
	a.History = history.NewService(repo, logger)

	clientOpts := append([]strava.Option{
		strava.WithTimeout(cfg.Client.Timeout),
		strava.WithLogger(logger),
	}, opts...)
	a.Strava = strava.NewClient(cfg.Strava.Credentials(), clientOpts...)

	a.Feed = feed.NewService(a.Strava, a.Strava, a.History, logger)

	return a, nil
}

// Close releases the history database, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
