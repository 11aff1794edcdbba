package gauge

import (
	"image/color"
	"strings"
	"testing"
)

func TestExtractStyledSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		start    int
		end      int
		expected string
	}{
		{
			name:     "extract leading segment with ANSI codes",
			input:    "\x1b[31mA\x1b[0m\x1b[31mB\x1b[0m\x1b[31mC\x1b[0m",
			start:    0,
			end:      2,
			expected: "\x1b[31mA\x1b[0m\x1b[31mB",
		},
		{
			name:     "extract single character with ANSI",
			input:    "\x1b[31mA\x1b[0m\x1b[31mB\x1b[0m\x1b[31mC\x1b[0m",
			start:    1,
			end:      2,
			expected: "\x1b[0m\x1b[31mB",
		},
		{
			name:     "extract without ANSI codes",
			input:    "ABC",
			start:    0,
			end:      2,
			expected: "AB",
		},
		{
			name:     "extract entire string",
			input:    "\x1b[31mABC\x1b[0m",
			start:    0,
			end:      3,
			expected: "\x1b[31mABC",
		},
		{
			name:     "extract empty range",
			input:    "\x1b[31mABC\x1b[0m",
			start:    1,
			end:      1,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := extractStyledSegment(tt.input, tt.start, tt.end)
			if result != tt.expected {
				t.Errorf("extractStyledSegment() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestStripAnsi(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "remove single ANSI code", input: "\x1b[31mHello\x1b[0m", expected: "Hello"},
		{name: "remove multiple ANSI codes", input: "\x1b[31mH\x1b[0m\x1b[32me\x1b[0m\x1b[33ml\x1b[0m", expected: "Hel"},
		{name: "no ANSI codes", input: "Hello", expected: "Hello"},
		{name: "empty string", input: "", expected: ""},
		{name: "only ANSI codes", input: "\x1b[31m\x1b[0m", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := stripAnsi(tt.input)
			if result != tt.expected {
				t.Errorf("stripAnsi() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCombineBraille(t *testing.T) {
	t.Parallel()

	left := rune(0x2801)  // dot 1
	right := rune(0x2808) // dot 4
	combined := combineBraille(left, right)
	if combined != rune(0x2809) {
		t.Errorf("combineBraille() = %U, want U+2809", combined)
	}

	if got := combineBraille(emptyBraille, left); got != left {
		t.Errorf("combineBraille(empty, dot1) = %U, want %U", got, left)
	}
}

func TestOverlayRingsColoring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		bgStr         string
		fillStr       string
		wantTwoColors bool
	}{
		{name: "full fill covers background", bgStr: "⣿⣿⣿", fillStr: "⣿⣿⣿", wantTwoColors: false},
		{name: "no fill shows background", bgStr: "⣿⣿⣿", fillStr: "   ", wantTwoColors: false},
		{name: "partial fill shows both colors", bgStr: "⣿⣿⣿", fillStr: "⣿  ", wantTwoColors: true},
		{name: "empty braille in fill uses bg color", bgStr: "⣿⣿⣿", fillStr: "⠀⠀⠀", wantTwoColors: false},
	}

	bgColor := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	fillColor := color.RGBA{R: 255, G: 0, B: 0, A: 255}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := overlayRings(tt.bgStr, tt.fillStr, bgColor, fillColor)

			if !strings.Contains(result, "\x1b[") {
				t.Fatal("expected ANSI color codes in output")
			}

			distinctCodes := make(map[string]bool)
			for _, p := range strings.Split(result, "\x1b[")[1:] {
				if idx := strings.Index(p, "m"); idx != -1 {
					distinctCodes[p[:idx+1]] = true
				}
			}
			if tt.wantTwoColors && len(distinctCodes) < 2 {
				t.Errorf("expected distinct bg and fill colors, got %d codes", len(distinctCodes))
			}

			if stripped := stripAnsi(result); len([]rune(stripped)) != len([]rune(tt.bgStr)) {
				t.Errorf("stripped output %q does not preserve shape of %q", stripped, tt.bgStr)
			}
		})
	}
}

func TestGaugeRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fraction float64
		center   string
	}{
		{name: "empty", fraction: 0, center: "00:00:00"},
		{name: "quarter", fraction: 0.25, center: "01:15:00"},
		{name: "half", fraction: 0.5, center: "02:30:00"},
		{name: "full", fraction: 1, center: "05:00:00"},
		{name: "clamped above one", fraction: 1.7, center: "--"},
		{name: "clamped below zero", fraction: -0.3, center: "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := New(tt.fraction, tt.center, "UNTIL MAGHRIB", nil)
			result := g.Render()
			stripped := stripAnsi(result)

			if !strings.Contains(stripped, tt.center) {
				t.Errorf("render missing center text %q", tt.center)
			}
			if !strings.Contains(stripped, "UNTIL MAGHRIB") {
				t.Error("render missing label")
			}

			// ring body plus label line
			lines := strings.Split(stripped, "\n")
			if len(lines) != ringDotsHeight/4+1 {
				t.Errorf("render has %d lines, want %d", len(lines), ringDotsHeight/4+1)
			}

			hasBraille := false
			for _, r := range stripped {
				if isBraille(r) && r != emptyBraille {
					hasBraille = true
					break
				}
			}
			if !hasBraille {
				t.Error("render contains no braille ring")
			}
		})
	}
}
