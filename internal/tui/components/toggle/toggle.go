// Package toggle renders a labelled two-state switch: both options side by
// side, the active one highlighted.
package toggle

import (
	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

type Toggle struct {
	Label   string
	OnText  string
	OffText string
	On      bool

	Theme theme.Theme
}

func New(label, onText, offText string, on bool, t theme.Theme) Toggle {
	return Toggle{
		Label:   label,
		OnText:  onText,
		OffText: offText,
		On:      on,
		Theme:   t,
	}
}

func (t Toggle) Render() string {
	active := lipgloss.NewStyle().
		Foreground(theme.ColorBlack).
		Background(t.Theme.Primary()).
		Padding(0, 1).
		Bold(true)
	inactive := lipgloss.NewStyle().
		Foreground(t.Theme.Muted()).
		Padding(0, 1)

	on, off := inactive, active
	if t.On {
		on, off = active, inactive
	}

	label := lipgloss.NewStyle().
		Foreground(t.Theme.Muted()).
		MarginRight(1).
		Render(t.Label)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		label,
		on.Render(t.OnText),
		off.Render(t.OffText),
	)
}
