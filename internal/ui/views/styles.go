package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	RegexOn     lipgloss.Style
	RegexOff    lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Normal      lipgloss.Style
	Highlight   lipgloss.Style
	Cursor      lipgloss.Style
	SelectionBg lipgloss.Style
	Scroll      lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		RegexOn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		RegexOff: lipgloss.NewStyle().Faint(true),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1), // red
		Normal:      lipgloss.NewStyle(),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
