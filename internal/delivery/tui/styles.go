package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin mocha palette
var (
	ColorBase     = lipgloss.Color("#1e1e2e")
	ColorSurface1 = lipgloss.Color("#45475a")
	ColorText     = lipgloss.Color("#cdd6f4")
	ColorSubtext  = lipgloss.Color("#a6adc8")
	ColorLavender = lipgloss.Color("#b4befe")
	ColorSapphire = lipgloss.Color("#74c7ec")
	ColorYellow   = lipgloss.Color("#f9e2af")
	ColorPeach    = lipgloss.Color("#fab387")
	ColorRed      = lipgloss.Color("#f38ba8")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorSapphire).
			Bold(true).
			PaddingLeft(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext).
			Padding(0, 1)

	ActiveTabStyle = TabStyle.
			Foreground(ColorBase).
			Background(ColorLavender).
			Bold(true)

	ContentStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurface1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			PaddingLeft(1)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext).
			Italic(true).
			Padding(1, 2)
)
