package tui

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes so the editor follows the terminal theme.
const (
	colorRed   = lipgloss.Color("9")
	colorGreen = lipgloss.Color("10")
	colorBlue  = lipgloss.Color("12")
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)

	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	statusStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	focusedStyle = lipgloss.NewStyle().Foreground(colorBlue)

	// labelStyle pads field names so inputs line up in one column.
	labelStyle      = lipgloss.NewStyle().Width(12)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBlue).Padding(1, 2)
)
