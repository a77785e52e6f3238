package color

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// HeaderStyle renders section headings.
	HeaderStyle lipgloss.Style
	// DefaultStyle highlights the default calculator.
	DefaultStyle lipgloss.Style
	// MutedStyle de-emphasizes secondary details.
	MutedStyle lipgloss.Style
	// ErrorStyle renders configuration problems.
	ErrorStyle lipgloss.Style
)

func init() {
	buildStyles()
}

// Initialize sets the background mode and rebuilds the styles for it.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
	buildStyles()
}

func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().Bold(true)
	DefaultStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#007700", Dark: "#5AF78E"}).
		Bold(true)
	MutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})
	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5C57"})
}
