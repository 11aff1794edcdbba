// Package footer renders the bottom bar: key hints on the left, location
// context on the right.
package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

type Footer struct {
	hints        string
	rightContent string
	width        int
	padding      int

	theme theme.Theme
}

func New(hints, rightContent string, width int, t theme.Theme) Footer {
	return Footer{
		hints:        hints,
		rightContent: rightContent,
		width:        width,
		padding:      2,
		theme:        t,
	}
}

func (f Footer) Render() string {
	style := lipgloss.NewStyle().Foreground(f.theme.Muted())

	left := style.Render(f.hints)
	right := style.Render(f.rightContent)

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 0)

	spacer := make([]byte, spacerWidth)
	for i := range spacer {
		spacer[i] = ' '
	}

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		PaddingBottom(1).
		Render(left + string(spacer) + right)
}
