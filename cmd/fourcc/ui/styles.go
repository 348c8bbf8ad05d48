// Package ui provides the lipgloss styling for fourcc's tabular output.
// Colors are dropped automatically when stdout is not a terminal.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	Muted   = lipgloss.AdaptiveColor{Light: "#6a737d", Dark: "#8b949e"}
	Warning = lipgloss.Color("#FFC107")
)

// Styles holds the styles used for rendering.
type Styles struct {
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Warn  lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),
		Body:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(Muted),
		Bold:  lipgloss.NewStyle().Bold(true),
		Warn:  lipgloss.NewStyle().Foreground(Warning),
	}
}
