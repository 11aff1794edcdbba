package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

type SplashState struct{}

func (m *Model) SplashView() string {
	tagline := lipgloss.NewStyle().
		Foreground(theme.ColorDim).
		Render("prayer times in your terminal")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.LogoView(),
		"",
		tagline,
	)
}
