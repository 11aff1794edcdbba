package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mihrab-app/mihrab/internal/repository"
)

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func loadScheduleCmd(deps Deps, date time.Time) tea.Cmd {
	return func() tea.Msg {
		day, err := deps.Loader.Load(deps.Ctx, date)
		return ScheduleMsg{Day: day, Err: err}
	}
}

func loadBookmarkCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		bookmark, ok, err := deps.Repository.Bookmarks.Get(deps.Ctx)
		return BookmarkMsg{Bookmark: bookmark, OK: ok, Err: err}
	}
}

func saveBookmarkCmd(deps Deps, surah, verse int) tea.Cmd {
	return func() tea.Msg {
		err := deps.Repository.Bookmarks.Set(deps.Ctx, surah, verse)
		return BookmarkSavedMsg{
			Bookmark: repository.Bookmark{Surah: surah, Verse: verse, UpdatedAt: time.Now()},
			Err:      err,
		}
	}
}
