// Package output provides styled terminal rendering helpers for tradewatch.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/harborline/tradewatch/internal/priority"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorCritical is used for critical-band items and regressions.
	ColorCritical = lipgloss.Color("#ef5350")

	// ColorHigh is used for high-band items.
	ColorHigh = lipgloss.Color("#ffa726")

	// ColorMedium is used for medium-band items.
	ColorMedium = lipgloss.Color("#fff59d")

	// ColorLow is used for low-band items and improvements.
	ColorLow = lipgloss.Color("#66bb6a")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleCritical is used for critical-band values.
	StyleCritical = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)

	// StyleHigh is used for high-band values.
	StyleHigh = lipgloss.NewStyle().
			Foreground(ColorHigh)

	// StyleMedium is used for medium-band values.
	StyleMedium = lipgloss.NewStyle().
			Foreground(ColorMedium)

	// StyleLow is used for low-band values.
	StyleLow = lipgloss.NewStyle().
			Foreground(ColorLow)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

func init() {
	// Color is pointless when stdout is not a terminal (piped output,
	// redirects); commands may still force it off with --no-color.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		SetNoColor(true)
	}
}

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleCritical = plain
		StyleHigh = plain
		StyleMedium = plain
		StyleLow = plain
		StyleMuted = plain
		StyleBold = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// BandStyle returns the style for an urgency band.
func BandStyle(b priority.Band) lipgloss.Style {
	switch b {
	case priority.BandCritical:
		return StyleCritical
	case priority.BandHigh:
		return StyleHigh
	case priority.BandMedium:
		return StyleMedium
	default:
		return StyleLow
	}
}
