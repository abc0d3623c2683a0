package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelBody   lipgloss.Style
	PanelIndex  lipgloss.Style
	Camera      lipgloss.Style
	Boundary    lipgloss.Style
	StatusError lipgloss.Style
	ActiveDot   lipgloss.Style
	InactiveDot lipgloss.Style
	Popup       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 3),
		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1),
		PanelBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PanelIndex:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Camera:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Boundary:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		ActiveDot:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		InactiveDot: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2),
	}
}
