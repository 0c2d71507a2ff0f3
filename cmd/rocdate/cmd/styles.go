package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorOK      = lipgloss.Color("#10B981")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(10)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
		Foreground(colorMuted)

	okStyle = lipgloss.NewStyle().
		Foreground(colorOK)

	// Month grid
	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Right)

	weekendStyle = cellStyle.
			Foreground(colorAccent)

	todayStyle = cellStyle.
			Bold(true).
			Foreground(colorPrimary)

	headerCellStyle = cellStyle.
			Foreground(colorMuted)
)
