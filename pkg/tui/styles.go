package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive    = "170" // Purple/magenta for focused panes
	ColorInactive  = "240" // Gray for unfocused panes
	ColorSelected  = "236" // Dark gray for background selection
	ColorNormal    = "245" // Light gray for normal text
	ColorDim       = "241"
	ColorWarning   = "214" // Orange for headers and warnings
	ColorDanger    = "196"
	ColorSuccess   = "28"
	ColorWhite     = "255"
	ColorDark      = "235"
	ColorHighlight = "11" // Yellow for the selected card
	ColorStatusBg  = "62"
	ColorStatusFg  = "230"
)

var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	// Editor pane titles
	ValidStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSuccess))

	InvalidStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDanger))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)
)

// GetActiveHeaderStyle colors a pane header by focus.
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorHighlight
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

func paneStyle(isActive bool) lipgloss.Style {
	if isActive {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}

// blockStyle paints a preview card.
func blockStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(color))
}
