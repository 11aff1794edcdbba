// Package tui is the terminal interface: a splash page, the prayer
// timetable home page, and the Quran reader.
package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/config"
	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/timetable"
	"github.com/mihrab-app/mihrab/internal/tui/theme"
	"github.com/mihrab-app/mihrab/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	homePage
	quranPage
)

type state struct {
	splash SplashState
	home   HomeState
	quran  QuranState
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	clock12        bool
	state          state
	deps           Deps
}

func New(deps Deps) Model {
	return Model{
		page:    splashPage,
		theme:   theme.New(theme.Variant(deps.Config.Theme)),
		clock12: deps.Config.TimeFormat == config.TimeFormat12h,
		deps:    deps,
		state: state{
			splash: SplashState{},
			home:   HomeState{},
			quran:  newQuranState(deps.Config.Translation),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splashDuration, func(t time.Time) tea.Msg {
			return SplashTickMsg{}
		}),
		loadScheduleCmd(m.deps, m.now()),
		loadBookmarkCmd(m.deps),
		tickCmd(),
	)
}

func (m *Model) now() time.Time {
	return time.Now().In(m.deps.Location)
}

// clockLayout is the time.Format layout for the current 12/24h toggle
// state; it starts from the configured format and flips with the f key.
func (m *Model) clockLayout() string {
	if m.clock12 {
		return "3:04 PM"
	}
	return "15:04"
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		return m.updateKey(msg)

	// splash timer expired - transition to home
	case SplashTickMsg:
		if m.page == splashPage {
			m.page = homePage
		}

	case TickMsg:
		return m, m.updateTick(time.Time(msg))

	case ScheduleMsg:
		m.state.home.Err = msg.Err
		if msg.Err == nil {
			m.state.home.Day = msg.Day
			m.state.home.Snapshot = prayer.Compute(msg.Day, m.now())
		} else if m.deps.Logger != nil {
			m.deps.Logger.Error("failed to load schedule", xslog.Error(msg.Err))
		}

	case BookmarkMsg:
		if msg.Err == nil && msg.OK {
			m.state.quran.Bookmark = msg.Bookmark
			m.state.quran.HasBookmark = true
		}

	case BookmarkSavedMsg:
		if msg.Err == nil {
			m.state.quran.Bookmark = msg.Bookmark
			m.state.quran.HasBookmark = true
			m.state.quran.Status = "bookmark saved"
		} else {
			m.state.quran.Status = "failed to save bookmark"
		}
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		switch m.page {
		case homePage:
			m.page = quranPage
		case quranPage:
			m.page = homePage
		}
		return m, nil

	case "r":
		if m.page == homePage {
			return m, loadScheduleCmd(m.deps, m.now())
		}

	case "f":
		m.clock12 = !m.clock12
		return m, nil

	case "t":
		m.state.quran.ShowTranslation = !m.state.quran.ShowTranslation
		return m, nil
	}

	if m.page != quranPage {
		return m, nil
	}

	q := &m.state.quran
	switch msg.String() {
	case "l", "right":
		q.nextSurah()
	case "h", "left":
		q.prevSurah()
	case "j", "down":
		q.nextVerse()
	case "k", "up":
		q.prevVerse()
	case "g":
		q.jumpToBookmark()
	case "b", "enter":
		if len(q.Verses) > 0 {
			verse := q.Verses[q.VerseIdx]
			return m, saveBookmarkCmd(m.deps, verse.Surah, verse.Number)
		}
	}

	return m, nil
}

// updateTick recomputes the snapshot from the immutable day and schedules
// the next tick. When the calendar day rolls over the timetable is
// reloaded.
func (m *Model) updateTick(now time.Time) tea.Cmd {
	home := &m.state.home
	home.Pulse = !home.Pulse

	cmds := []tea.Cmd{tickCmd()}

	if !home.Day.IsZero() {
		local := now.In(m.deps.Location)
		home.Snapshot = prayer.Compute(home.Day, local)

		if !timetable.Midnight(local, m.deps.Location).Equal(home.Day.Date) {
			cmds = append(cmds, loadScheduleCmd(m.deps, local))
		}
	}

	return tea.Batch(cmds...)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses the theme
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.SplashView(),
		)

	case homePage:
		content = m.placeWithFooter(m.HomeView(), m.homeFooterView())

	case quranPage:
		content = m.placeWithFooter(m.QuranView(), m.quranFooterView())
	}

	view.SetContent(content)
	return view
}

func (m *Model) placeWithFooter(body, foot string) string {
	footHeight := lipgloss.Height(foot)

	placed := lipgloss.Place(
		m.viewportWidth,
		max(m.viewportHeight-footHeight, 0),
		lipgloss.Center,
		lipgloss.Center,
		body,
	)

	return lipgloss.JoinVertical(lipgloss.Left, placed, foot)
}
