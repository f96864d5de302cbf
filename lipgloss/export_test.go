package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/marky"
)

// RenderTable exports renderer.table for testing, drawing dividers from border.
func RenderTable(t marky.TableBlock, width int, theme marky.Theme, border lipgloss.Border) string {
	r := newRenderer(theme)
	r.styles.Border = border
	return r.table(t, width)
}
