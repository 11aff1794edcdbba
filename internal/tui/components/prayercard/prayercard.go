// Package prayercard renders one prayer as a small bordered card: name,
// Arabic name, and clock time, styled by its passed/next/upcoming state.
package prayercard

import (
	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

const cardWidth = 13

type Card struct {
	Name   string // localized display name
	Arabic string
	Clock  string // formatted time, e.g. "18:20"

	Passed bool
	Next   bool

	Theme theme.Theme
}

func New(name, arabic, clock string, t theme.Theme) Card {
	return Card{Name: name, Arabic: arabic, Clock: clock, Theme: t}
}

func (c Card) WithPassed(passed bool) Card {
	c.Passed = passed
	return c
}

func (c Card) WithNext(next bool) Card {
	c.Next = next
	return c
}

func (c Card) Render() string {
	var (
		borderColor = c.Theme.Border()
		nameColor   = c.Theme.Foreground()
		arabicColor = theme.ColorGreenSoft
		clockColor  = c.Theme.Foreground()
		bold        = false
	)

	switch {
	case c.Next:
		borderColor = c.Theme.Primary()
		nameColor = c.Theme.Primary()
		clockColor = c.Theme.Primary()
		bold = true
	case c.Passed:
		borderColor = c.Theme.PassedColor()
		nameColor = c.Theme.PassedColor()
		arabicColor = c.Theme.PassedColor()
		clockColor = c.Theme.PassedColor()
	}

	nameStyle := lipgloss.NewStyle().Foreground(nameColor).Bold(bold)
	arabicStyle := lipgloss.NewStyle().Foreground(arabicColor)
	clockStyle := lipgloss.NewStyle().Foreground(clockColor).Bold(bold)

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		nameStyle.Render(c.Name),
		arabicStyle.Render(c.Arabic),
		clockStyle.Render(c.Clock),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(cardWidth).
		Align(lipgloss.Center).
		Render(body)
}
