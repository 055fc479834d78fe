package cli

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the table-rendering commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")) // Medium gray

	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")) // Red
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")) // Yellow
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // Green
)

// priorityStyle picks the style for a priority label.
func priorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return highStyle
	case "medium":
		return mediumStyle
	default:
		return lowStyle
	}
}
