package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/mihrab-app/mihrab/internal/config"
	"github.com/mihrab-app/mihrab/internal/repository"
	"github.com/mihrab-app/mihrab/internal/timetable"
)

type Deps struct {
	Ctx        context.Context
	Logger     *slog.Logger
	Config     config.Config
	Location   *time.Location
	Loader     *timetable.Loader
	Repository *repository.Repository
}
