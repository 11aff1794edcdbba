package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/tui/components/footer"
	"github.com/mihrab-app/mihrab/internal/tui/components/gauge"
	"github.com/mihrab-app/mihrab/internal/tui/components/herocard"
	"github.com/mihrab-app/mihrab/internal/tui/components/prayercard"
	"github.com/mihrab-app/mihrab/internal/tui/components/toggle"
	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

type HomeState struct {
	Day      prayer.Day
	Snapshot prayer.Snapshot
	Err      error

	// Pulse flips every tick; the hero card uses it while urgent.
	Pulse bool
}

func (m *Model) HomeView() string {
	home := m.state.home

	if home.Err != nil {
		return m.errorView(home.Err)
	}
	if home.Day.IsZero() {
		return m.theme.TextMuted().Render("loading timetable...")
	}

	snap := home.Snapshot
	layout := m.clockLayout()

	hero := herocard.Card{
		Name:     snap.Next.Name.Display(),
		Arabic:   snap.Next.Name.Arabic(),
		Clock:    snap.Next.Time.Format(layout),
		Human:    snap.Countdown.Human(),
		Tomorrow: snap.NextIsTomorrow,
		Urgent:   snap.Countdown.IsUrgent,
		Phase:    home.Pulse,
		Theme:    m.theme,
	}

	ringColor := m.theme.Primary()
	if snap.Countdown.IsUrgent {
		ringColor = theme.ColorUrgent
	}
	ring := gauge.New(
		m.remainingFraction(),
		snap.Countdown.HHMMSS(),
		fmt.Sprintf("UNTIL %s", strings.ToUpper(snap.Next.Name.Display())),
		ringColor,
		gauge.WithBgColor(m.theme.Surface()),
		gauge.WithTextColor(m.theme.Foreground()),
	)

	cards := make([]string, 0, 2*len(snap.Prayers)-1)
	for i, p := range snap.Prayers {
		if i > 0 {
			cards = append(cards, " ")
		}
		card := prayercard.New(
			p.Name.Display(),
			p.Name.Arabic(),
			p.Time.Format(layout),
			m.theme,
		).WithPassed(p.IsPassed).WithNext(p.IsNext)
		cards = append(cards, card.Render())
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.headerView(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, hero.Render(), "   ", ring.Render()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.quickAccessView(),
	)
}

// quickAccessView renders the display toggles under the prayer cards.
func (m *Model) quickAccessView() string {
	clock := toggle.New("f time", "12h", "24h", m.clock12, m.theme)
	translation := toggle.New("t translation", "on", "off", m.state.quran.ShowTranslation, m.theme)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		clock.Render(),
		"      ",
		translation.Render(),
	)
}

func (m *Model) headerView() string {
	home := m.state.home

	gregorian := home.Day.Date.Format("Monday, 2 January 2006")
	header := m.theme.Base().Bold(true).Render(gregorian)

	if home.Day.Hijri != "" {
		hijri := lipgloss.NewStyle().
			Foreground(m.theme.Secondary()).
			Render(home.Day.Hijri)
		header = lipgloss.JoinVertical(lipgloss.Center, header, hijri)
	}

	return header
}

// remainingFraction is the unelapsed share of the interval between the
// current prayer and the next, driving the countdown ring.
func (m *Model) remainingFraction() float64 {
	snap := m.state.home.Snapshot

	prev := m.state.home.Day.Time(snap.Current)
	if !prev.Before(snap.Next.Time) {
		// before fajr the current prayer is isha by convention, whose
		// timestamp today is after fajr; approximate yesterday's isha
		prev = prev.Add(-24 * time.Hour)
	}

	interval := snap.Next.Time.Sub(prev).Seconds()
	if interval <= 0 {
		return 0
	}

	return float64(snap.Countdown.TotalSeconds) / interval
}

func (m *Model) errorView(err error) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ColorUrgent).
		Bold(true).
		Render("failed to load timetable")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		m.theme.TextMuted().Render(err.Error()),
		"",
		m.theme.TextMuted().Render("press r to retry"),
	)
}

func (m *Model) homeFooterView() string {
	right := fmt.Sprintf("%.4f, %.4f", m.deps.Config.Latitude, m.deps.Config.Longitude)
	return footer.New("tab quran · f 12/24h · t translation · r refresh · q quit", right, m.viewportWidth, m.theme).Render()
}
