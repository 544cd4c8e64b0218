package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	SearchBox    lipgloss.Style
	Dim          lipgloss.Style
	Loading      lipgloss.Style
	Error        lipgloss.Style
	Guidance     lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Name         lipgloss.Style
	Match        lipgloss.Style
	Stars        lipgloss.Style
	Price        lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Dim:      lipgloss.NewStyle().Faint(true),
		Loading:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Guidance: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Name:   lipgloss.NewStyle().Bold(true),
		Match:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Stars:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Price:  lipgloss.NewStyle().Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Main:   lipgloss.NewStyle().Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
