package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/marky"
	mlg "github.com/fwojciec/marky/lipgloss"
)

// Styles maps a Theme to lipgloss styles for the viewer chrome.
type Styles struct {
	Title lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t marky.Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Foreground(mlg.Color(t.Heading)).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(mlg.Color(t.Muted)).Faint(true),
	}
}
