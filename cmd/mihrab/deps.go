package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mihrab-app/mihrab/internal/aladhan"
	"github.com/mihrab-app/mihrab/internal/config"
	"github.com/mihrab-app/mihrab/internal/db"
	"github.com/mihrab-app/mihrab/internal/paths"
	"github.com/mihrab-app/mihrab/internal/repository"
	"github.com/mihrab-app/mihrab/internal/timetable"
	"github.com/mihrab-app/mihrab/internal/xslog"
)

// appDeps is the shared wiring every subcommand builds: config, the local
// sqlite cache, and the AlAdhan-backed timetable loader.
type appDeps struct {
	Config     config.Config
	Location   *time.Location
	Logger     *slog.Logger
	Repository *repository.Repository
	Loader     *timetable.Loader

	sqlDB *sql.DB
}

func newAppDeps() (*appDeps, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}

	dbPath, err := paths.DB()
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := repository.New(sqlDB, repository.CacheParams{
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Method:    cfg.Method,
		School:    cfg.School,
	}, loc)

	logger := xslog.NewLoggerFromEnv(os.Stderr)

	source := timetable.NewCachedSource(
		timetable.NewAlAdhanSource(aladhan.New(), aladhan.Params{
			Latitude:  cfg.Latitude,
			Longitude: cfg.Longitude,
			Method:    cfg.Method,
			School:    cfg.School,
		}, loc),
		repo.Timetables,
		logger,
	)

	return &appDeps{
		Config:     cfg,
		Location:   loc,
		Logger:     logger,
		Repository: repo,
		Loader:     timetable.NewLoader(source, loc),
		sqlDB:      sqlDB,
	}, nil
}

func (d *appDeps) Close() error {
	return d.sqlDB.Close()
}
