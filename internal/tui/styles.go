package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"})

	statusBusyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"})
)
