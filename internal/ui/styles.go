// ABOUTME: Defines color palette, symbols, and NO_COLOR initialization
// ABOUTME: Centralizes styling shared by the CLI output and the dashboard
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic color definitions
var (
	ColorSuccess = lipgloss.Color("#22c55e") // Green
	ColorError   = lipgloss.Color("#ef4444") // Red
	ColorWarning = lipgloss.Color("#eab308") // Yellow
	ColorInfo    = lipgloss.Color("#06b6d4") // Cyan
	ColorMuted   = lipgloss.Color("#6b7280") // Gray
	ColorAccent  = lipgloss.Color("#8b5cf6") // Purple
)

// Symbol definitions
var (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolBullet  = "•"
)

// Panel styles shared by the dashboard widgets. The focused border uses the
// accent color so the active panel stands out without a cursor.
var (
	PanelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMuted)

	PanelFocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	DisabledItemStyle = lipgloss.NewStyle().
				Strikethrough(true).
				Foreground(ColorMuted)
)

func init() {
	initColorProfile()
}

func initColorProfile() {
	// Respect NO_COLOR standard (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		DisableColor()
	}
}

// DisableColor drops all styling, for --no-color and piped output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
