package cli

import "github.com/charmbracelet/lipgloss"

// Styles for terminal output
var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	boldStyle = lipgloss.NewStyle().
			Bold(true)
)
