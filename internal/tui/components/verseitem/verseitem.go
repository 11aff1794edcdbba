// Package verseitem renders one ayah: number badge, Arabic text, and the
// optional translation and transliteration lines.
package verseitem

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/quran"
	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

type Item struct {
	Verse quran.Verse

	Selected        bool
	Bookmarked      bool
	ShowTranslation bool
	Width           int

	Theme theme.Theme
}

func (i Item) Render() string {
	width := i.Width
	if width < 20 {
		width = 60
	}

	badgeColor := i.Theme.Muted()
	if i.Selected {
		badgeColor = i.Theme.Primary()
	}

	badge := fmt.Sprintf("%d:%d", i.Verse.Surah, i.Verse.Number)
	if i.Bookmarked {
		badge += " ◆"
	}

	badgeStyle := lipgloss.NewStyle().Foreground(badgeColor).Bold(i.Selected)
	arabicStyle := lipgloss.NewStyle().
		Foreground(theme.ColorGreenSoft).
		Width(width).
		Align(lipgloss.Right)
	latinStyle := lipgloss.NewStyle().
		Foreground(i.Theme.Muted()).
		Width(width).
		Align(lipgloss.Left).
		Italic(true)

	lines := []string{
		badgeStyle.Render(badge),
		arabicStyle.Render(i.Verse.Arabic),
	}
	if i.ShowTranslation {
		lines = append(lines,
			i.Theme.Base().Width(width).Render(i.Verse.Translation),
			latinStyle.Render(i.Verse.Transliteration),
		)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)

	if !i.Selected {
		return lipgloss.NewStyle().PaddingLeft(2).Render(body)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(i.Theme.Primary()).
		PaddingLeft(1).
		Render(body)
}
