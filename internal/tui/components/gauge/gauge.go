// Package gauge renders a circular braille countdown ring with text in
// the hollow center.
package gauge

import (
	"image/color"
	"strings"
	"unicode"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

const (
	// ring dimensions in braille dots (2 dots per char width, 4 per height),
	// sized so the hollow center fits an HH:MM:SS string
	ringDotsWidth  = 52 // 26 chars wide
	ringDotsHeight = 52 // 13 chars tall
)

// Gauge is a circular ring filled clockwise by Fraction, with Center text
// inside and Label underneath.
type Gauge struct {
	Fraction  float64 // 0..1 portion of the ring to fill
	Center    string  // text in the hollow middle, e.g. "00:04:00"
	Label     string
	Color     color.Color // filled portion
	BgColor   color.Color // unfilled portion
	TextColor color.Color
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) { g.BgColor = c }
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) { g.TextColor = c }
}

func New(fraction float64, center, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Fraction:  fraction,
		Center:    center,
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func (g Gauge) Render() string {
	canvas := drawille.NewCanvas()

	var (
		centerX = float64(ringDotsWidth) / 2
		centerY = float64(ringDotsHeight) / 2
		radius  = float64(ringDotsWidth)/2 - 1
	)

	fraction := g.Fraction
	if fraction > 1 {
		fraction = 1
	}
	if fraction < 0 {
		fraction = 0
	}

	// background ring in the dim color, then the filled sweep on top
	drawFullArc(&canvas, centerX, centerY, radius)
	ringStr := canvasString(&canvas, ringDotsWidth, ringDotsHeight)

	canvas.Clear()
	if fraction > 0 {
		drawFilledArc(&canvas, centerX, centerY, radius, fraction)
	}
	fillStr := canvasString(&canvas, ringDotsWidth, ringDotsHeight)

	combined := overlayRings(ringStr, fillStr, g.BgColor, g.Color)

	centerStyle := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true)

	var (
		ringHeight = lipgloss.Height(combined)
		ringWidth  = lipgloss.Width(combined)
	)

	centered := lipgloss.Place(
		ringWidth,
		ringHeight,
		lipgloss.Center,
		lipgloss.Center,
		centerStyle.Render(g.Center),
	)

	withCenter := overlayCenter(combined, centered)

	labelStyle := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(ringWidth).
		Align(lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		withCenter,
		labelStyle.Render(g.Label),
	)
}

// canvasString extracts the canvas as a string of exact dimensions.
func canvasString(canvas *drawille.Canvas, width, height int) string {
	charWidth := width / 2
	charHeight := height / 4

	rows := canvas.Rows(0, 0, width, height)

	lines := make([]string, 0, charHeight)
	for i := range charHeight {
		if i >= len(rows) {
			lines = append(lines, strings.Repeat(" ", charWidth))
			continue
		}
		line := rows[i]
		runeCount := len([]rune(line))
		if runeCount < charWidth {
			line += strings.Repeat(" ", charWidth-runeCount)
		} else if runeCount > charWidth {
			line = string([]rune(line)[:charWidth])
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

const (
	emptyBraille rune = '⠀'
	ansiEscape   rune = '\x1b'
)

// overlayRings layers the filled sweep over the background ring, ORing
// braille dots where both have content so the ring stays gap free.
func overlayRings(bgStr, fillStr string, bgColor, fillColor color.Color) string {
	var (
		bgLines   = strings.Split(bgStr, "\n")
		fillLines = strings.Split(fillStr, "\n")
		result    = make([]string, 0, len(bgLines))
		bgStyle   = lipgloss.NewStyle().Foreground(bgColor)
		fillStyle = lipgloss.NewStyle().Foreground(fillColor)
	)

	for i := range len(bgLines) {
		bgRunes := []rune(bgLines[i])
		var fillRunes []rune
		if i < len(fillLines) {
			fillRunes = []rune(fillLines[i])
		}

		var lineBuilder strings.Builder
		for j := range len(bgRunes) {
			bgChar := bgRunes[j]
			fillChar := ' '
			if j < len(fillRunes) {
				fillChar = fillRunes[j]
			}

			bgIsBraille := isBraille(bgChar)
			fillHasDots := isBraille(fillChar) && fillChar != emptyBraille

			switch {
			case fillHasDots && bgIsBraille:
				lineBuilder.WriteString(fillStyle.Render(string(combineBraille(bgChar, fillChar))))
			case fillHasDots:
				lineBuilder.WriteString(fillStyle.Render(string(fillChar)))
			case bgIsBraille:
				lineBuilder.WriteString(bgStyle.Render(string(bgChar)))
			default:
				lineBuilder.WriteRune(' ')
			}
		}
		result = append(result, lineBuilder.String())
	}

	return strings.Join(result, "\n")
}

// isBraille reports whether r is in the braille block (U+2800 to U+28FF).
func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// combineBraille ORs the dot patterns of two braille characters.
func combineBraille(a, b rune) rune {
	return emptyBraille + ((a - emptyBraille) | (b - emptyBraille))
}

// overlayCenter places the centered text over the ring, preserving the
// ring's styled characters on either side of it.
func overlayCenter(ring, center string) string {
	var (
		ringLines   = strings.Split(ring, "\n")
		centerLines = strings.Split(center, "\n")
		maxLines    = max(len(ringLines), len(centerLines))
		result      = make([]string, maxLines)
	)

	for i := range maxLines {
		var ringLine, centerLine string
		if i < len(ringLines) {
			ringLine = ringLines[i]
		}
		if i < len(centerLines) {
			centerLine = centerLines[i]
		}

		visible := stripAnsi(centerLine)
		start, end := -1, -1
		for idx, r := range []rune(visible) {
			if r != ' ' {
				if start == -1 {
					start = idx
				}
				end = idx + 1
			}
		}

		if start == -1 {
			result[i] = ringLine
			continue
		}

		ringRunes := []rune(stripAnsi(ringLine))

		var lineBuilder strings.Builder
		lineBuilder.WriteString(extractStyledSegment(ringLine, 0, min(start, len(ringRunes))))
		for j := len(ringRunes); j < start; j++ {
			lineBuilder.WriteRune(' ')
		}
		lineBuilder.WriteString(extractStyledSegment(centerLine, start, end))
		if end < len(ringRunes) {
			lineBuilder.WriteString(extractStyledSegment(ringLine, end, len(ringRunes)))
		}

		result[i] = lineBuilder.String()
	}

	return strings.Join(result, "\n")
}

// extractStyledSegment copies the visible characters in [start, end) from
// a styled string, carrying their ANSI sequences along.
func extractStyledSegment(styledStr string, start, end int) string {
	var (
		result         strings.Builder
		visibleIdx     = 0
		inEscape       = false
		pendingEscapes strings.Builder
	)

	for _, r := range styledStr {
		if r == ansiEscape {
			inEscape = true
			pendingEscapes.WriteRune(r)
			continue
		}

		if inEscape {
			pendingEscapes.WriteRune(r)
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}

		if visibleIdx >= start && visibleIdx < end {
			if pendingEscapes.Len() > 0 {
				result.WriteString(pendingEscapes.String())
			}
			result.WriteRune(r)
		}
		pendingEscapes.Reset()
		visibleIdx++
	}

	return result.String()
}

func stripAnsi(s string) string {
	var (
		result   strings.Builder
		inEscape = false
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			continue
		}
		if inEscape {
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
