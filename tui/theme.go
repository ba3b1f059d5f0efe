package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors so the picker reads on both light and dark terminals.
var (
	colorError  = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ef5350"}
	colorOk     = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#66bb6a"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#0277bd", Dark: "#4fc3f7"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"}
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleError  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleOk     = lipgloss.NewStyle().Foreground(colorOk)
	styleHelp   = lipgloss.NewStyle().Foreground(colorMuted)
	styleHeader = lipgloss.NewStyle().Bold(true)
)
