// Package herocard renders the next-prayer banner: name, time, and the
// live countdown. While the countdown is urgent the card pulses between
// two emphasis states, driven by the caller's tick phase.
package herocard

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

const cardWidth = 42

type Card struct {
	Name     string // localized display name
	Arabic   string
	Clock    string // formatted prayer time
	Human    string // countdown in words, e.g. "4min 0s"
	Tomorrow bool

	Urgent bool
	// Phase alternates every tick; with Urgent it drives the pulse.
	Phase bool

	Theme theme.Theme
}

func (c Card) Render() string {
	accent := c.Theme.Secondary()
	if c.Urgent {
		accent = theme.ColorUrgent
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(c.Theme.Muted()).
		Align(lipgloss.Center)

	nameStyle := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Align(lipgloss.Center)

	countdownStyle := lipgloss.NewStyle().
		Foreground(c.countdownColor(accent)).
		Bold(c.pulseBold()).
		Align(lipgloss.Center)

	title := "NEXT PRAYER"
	if c.Tomorrow {
		title = "NEXT PRAYER · TOMORROW"
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(title),
		nameStyle.Render(fmt.Sprintf("%s  %s", c.Name, c.Arabic)),
		c.Theme.Base().Render(c.Clock),
		countdownStyle.Render("in "+c.Human),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Width(cardWidth).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(body)
}

func (c Card) countdownColor(accent color.Color) color.Color {
	if c.Urgent && c.Phase {
		return c.Theme.Foreground()
	}
	return accent
}

func (c Card) pulseBold() bool {
	return !c.Urgent || c.Phase
}
