// Package theme is the palette every visual component draws from.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Variant string

const (
	Dark  Variant = "dark"
	Light Variant = "light"
)

type Theme struct {
	variant Variant

	background color.Color
	surface    color.Color
	border     color.Color
	foreground color.Color
	muted      color.Color
	passed     color.Color

	// gradient pair for the home background, dark to light
	gradientFrom color.Color
	gradientTo   color.Color

	base lipgloss.Style
}

func New(variant Variant) Theme {
	t := Theme{variant: variant}

	switch variant {
	case Light:
		t.background = ColorBgDay
		t.surface = ColorSurfaceDay
		t.border = ColorBorderDay
		t.foreground = ColorInkDay
		t.muted = ColorDimDay
		t.passed = ColorPassedDay
		t.gradientFrom = ColorBgDay
		t.gradientTo = ColorBgDayLight
	default:
		t.variant = Dark
		t.background = ColorBgDark
		t.surface = ColorSurfaceDark
		t.border = ColorBorderDark
		t.foreground = ColorWhite
		t.muted = ColorDim
		t.passed = ColorPassed
		t.gradientFrom = ColorBgDark
		t.gradientTo = ColorBgLight
	}

	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) IsDark() bool { return t.variant == Dark }

func (t Theme) Base() lipgloss.Style { return t.base }

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorGreen)
}

func (t Theme) TextMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.muted)
}

func (t Theme) Background() color.Color { return t.background }
func (t Theme) Surface() color.Color    { return t.surface }
func (t Theme) Border() color.Color     { return t.border }
func (t Theme) Foreground() color.Color { return t.foreground }
func (t Theme) Muted() color.Color      { return t.muted }
func (t Theme) PassedColor() color.Color { return t.passed }

func (t Theme) Primary() color.Color   { return ColorGreen }
func (t Theme) Secondary() color.Color { return ColorGold }
func (t Theme) Success() color.Color   { return ColorGreen }
func (t Theme) Error() color.Color     { return ColorUrgent }

func (t Theme) GradientFrom() color.Color { return t.gradientFrom }
func (t Theme) GradientTo() color.Color   { return t.gradientTo }
