package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorGreen     = lipgloss.Color("#00A86B") // primary, next prayer emphasis
	ColorGreenSoft = lipgloss.Color("#8FD6B5") // Arabic text, quiet accents
	ColorGold      = lipgloss.Color("#D4AF37") // secondary, hero card accents
	ColorUrgent    = lipgloss.Color("#FF4040") // countdown under five minutes
	ColorPassed    = lipgloss.Color("#5C6B63") // prayers already performed
)

var (
	ColorBgDark      = lipgloss.Color("#0E1512") // darker end of gradient
	ColorBgLight     = lipgloss.Color("#1C2A24") // lighter end of gradient
	ColorSurfaceDark = lipgloss.Color("#16211C")
	ColorBorderDark  = lipgloss.Color("#2E4038")
)

var (
	ColorBgDay      = lipgloss.Color("#F4F1E8")
	ColorBgDayLight = lipgloss.Color("#FFFDF6")
	ColorSurfaceDay = lipgloss.Color("#EAE5D6")
	ColorBorderDay  = lipgloss.Color("#C9C1AA")
	ColorInkDay     = lipgloss.Color("#1F2A25")
	ColorDimDay     = lipgloss.Color("#7A8077")
	ColorPassedDay  = lipgloss.Color("#A8B0A4")
)
