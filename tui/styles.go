package tui

import "github.com/charmbracelet/lipgloss"

// Palette: marquee amber on a dark screen, teal for good news
const (
	colorMarquee = "#F5B041"
	colorScreen  = "#1B2631"
	colorMatch   = "#48C9B0"
	colorFailure = "#E74C3C"
	colorMuted   = "#7F8C8D"
	colorFrame   = "#D68910"
	colorDropBox = "#5D6D7E"
)

var dashedBorder = lipgloss.Border{
	Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
	TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
}

// Styles for the TUI application
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorMarquee)).
			MarginTop(1).
			MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMatch))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorFailure))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	// BoxStyle frames the recognition result like a movie card
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(colorFrame)).
			Padding(0, 2)

	DropZoneStyle = lipgloss.NewStyle().
			Border(dashedBorder).
			BorderForeground(lipgloss.Color(colorDropBox)).
			Padding(0, 2)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorScreen)).
			Background(lipgloss.Color(colorMarquee)).
			Padding(0, 1)
)
