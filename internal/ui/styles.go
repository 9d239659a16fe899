// Package ui renders the Climate Chess board as an interactive terminal
// program: section cards, a detail pane for the selected piece, and a
// slide-over changelog panel.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the pre-compiled lipgloss styles for the board view.
type Styles struct {
	AppTitle     lipgloss.Style
	StatusBar    lipgloss.Style
	ErrorBar     lipgloss.Style
	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Positive     lipgloss.Style
	Negative     lipgloss.Style
	Muted        lipgloss.Style
	Dot          lipgloss.Style
	DetailPane   lipgloss.Style
	Overlay      lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the standard board theme.
func DefaultStyles() Styles {
	border := lipgloss.Color("240")
	return Styles{
		AppTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("22")).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		ErrorBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		SelectedItem: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("237")),
		Positive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		Negative: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Dot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		DetailPane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
