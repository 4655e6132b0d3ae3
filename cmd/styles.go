package cmd

import "charm.land/lipgloss/v2"

// Output styling for the terminal front end. The core never sees any
// of this; colors live entirely in cmd.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E")) // Rose, the first aid accent

	styleSubtle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")) // Slate

	styleCorrect = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E")) // Green

	styleWrong = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444")) // Red

	styleBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")) // Amber

	styleLocked = lipgloss.NewStyle().
			Faint(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 2)
)
