package tui

import (
	"time"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/repository"
)

const splashDuration = 1500 * time.Millisecond

type SplashTickMsg struct{}

// TickMsg fires once per second and drives every derived value on the
// home page.
type TickMsg time.Time

type ScheduleMsg struct {
	Day prayer.Day
	Err error
}

type BookmarkMsg struct {
	Bookmark repository.Bookmark
	OK       bool
	Err      error
}

type BookmarkSavedMsg struct {
	Bookmark repository.Bookmark
	Err      error
}
