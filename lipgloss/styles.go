package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/marky"
)

// Styles maps a Theme to lipgloss styles for terminal rendering.
type Styles struct {
	Heading   lipgloss.Style
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	Strike    lipgloss.Style
	Link      lipgloss.Style
	Code      lipgloss.Style
	Muted     lipgloss.Style
	Subscript lipgloss.Style
	// Border supplies the box drawing characters of table dividers.
	Border lipgloss.Border
}

// NewStyles creates Styles from a Theme.
func NewStyles(t marky.Theme) Styles {
	return Styles{
		Heading:   lipgloss.NewStyle().Foreground(Color(t.Heading)).Bold(true),
		Bold:      lipgloss.NewStyle().Bold(true),
		Italic:    lipgloss.NewStyle().Italic(true),
		Strike:    lipgloss.NewStyle().Strikethrough(true),
		Link:      lipgloss.NewStyle().Foreground(Color(t.Link)).Underline(true),
		Code:      lipgloss.NewStyle().Foreground(Color(t.Code)),
		Muted:     lipgloss.NewStyle().Foreground(Color(t.Muted)).Faint(true),
		Subscript: lipgloss.NewStyle().Faint(true),
		Border:    lipgloss.NormalBorder(),
	}
}

// Color converts a marky color to a lipgloss color. Transparent colors map
// to lipgloss.NoColor.
func Color(c marky.Color) lipgloss.TerminalColor {
	if c.Transparent() {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(string(c))
}
