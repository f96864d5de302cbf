package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/marky"
	"github.com/fwojciec/marky/layout"
	"github.com/rivo/uniseg"
)

var _ marky.CellMeasurer = (*Measurer)(nil)

// Measurer sizes table cells as styled terminal text: a cell's width is its
// widest line in terminal columns and its height is its line count. Text
// wider than the maximum width is word-wrapped.
type Measurer struct {
	styles Styles
}

// NewMeasurer creates a Measurer for theme.
func NewMeasurer(theme marky.Theme) *Measurer {
	return &Measurer{styles: NewStyles(theme)}
}

// MeasureCell implements marky.CellMeasurer.
func (m *Measurer) MeasureCell(cell marky.TableCell, c marky.Constraints) marky.Size {
	text := m.cellText(cell, c.MaxWidth, false)
	return c.Constrain(marky.Size{Width: lipgloss.Width(text), Height: lipgloss.Height(text)})
}

func (m *Measurer) cellText(cell marky.TableCell, maxWidth int, header bool) string {
	r := &renderer{styles: m.styles}
	text := r.inline(cell.Children)
	if header {
		text = m.styles.Bold.Render(text)
	}
	if maxWidth > 0 && maxWidth < marky.Unbounded {
		text = wrap(text, maxWidth)
	}
	return text
}

// Layout lays out t with the terminal measurer, narrowing the cell maximum
// width so that the table fits width where the style's minimum allows.
func Layout(t marky.TableBlock, width int, theme marky.Theme) marky.TableLayout {
	return layoutTable(t, width, theme.Table, NewMeasurer(theme))
}

// Layouts returns the layout of every table in nodes in the order
// marky.Tables finds them, each at the width Render gives it. Tables in
// block quotes and list items are narrowed by the quote bar and the item
// indent.
func Layouts(nodes []marky.Composable, width int, theme marky.Theme) []marky.TableLayout {
	if width <= 0 {
		width = 80
	}
	m := NewMeasurer(theme)
	var out []marky.TableLayout
	var walk func(nodes []marky.Composable, width int)
	walk = func(nodes []marky.Composable, width int) {
		for _, n := range nodes {
			switch n := n.(type) {
			case marky.TableBlock:
				out = append(out, layoutTable(n, width, theme.Table, m))
			case marky.BlockQuote:
				walk(n.Children, max(width-2, 10))
			case marky.Paragraph:
				walk(n.Children, width)
			case marky.ListBlock:
				indent := 0
				for _, e := range n.Entries {
					switch e := e.(type) {
					case marky.ListItem:
						indent = uniseg.StringWidth(listMarker(e.Type, n.Metadata.ListLevel))
					case marky.ListNode:
						walk([]marky.Composable{e.Node}, max(width-indent, 10))
					}
				}
			}
		}
	}
	walk(nodes, width)
	return out
}

func layoutTable(t marky.TableBlock, width int, style marky.TableStyle, m *Measurer) marky.TableLayout {
	return layout.New(t, fitStyle(style, t, width), m).Measure()
}

func (r *renderer) table(t marky.TableBlock, width int) string {
	out := layoutTable(t, width, r.theme.Table, r.measurer)
	if out.Size.Width == 0 || out.Size.Height == 0 {
		return ""
	}

	cv := newCanvas(out.Size, r.styles.Border)
	rows := t.Rows()
	for _, p := range out.Cells {
		cell := rows[p.Row].Cells[p.Column]
		text := r.measurer.cellText(cell, p.Rect.Width, p.Row == 0)
		lines := strings.Split(text, "\n")
		for i := 0; i < p.Rect.Height && i < len(lines); i++ {
			line := ansi.Truncate(lines[i], p.Rect.Width, "")
			line = lipgloss.PlaceHorizontal(p.Rect.Width, position(cell.Alignment), line)
			cv.text(p.Rect.X, p.Rect.Y+i, line, p.Rect.Width)
		}
	}
	for _, d := range out.Dividers {
		cv.divider(d)
	}
	return cv.render()
}

// fitStyle narrows the cell maximum width so that the table fits width,
// never below the style's minimum.
func fitStyle(s marky.TableStyle, t marky.TableBlock, width int) marky.TableStyle {
	columns := 0
	for _, row := range t.Rows() {
		columns = max(columns, len(row.Cells))
	}
	if columns == 0 {
		return s
	}
	chrome := s.Left.Reserved() + s.Right.Reserved() + s.BodyVertical.Reserved()*(columns-1)
	available := (width - chrome) / columns
	minW, maxW := s.WidthBounds()
	if available < maxW {
		s.CellMaxWidth = max(available, minW, 1)
	}
	return s
}

func position(a marky.Alignment) lipgloss.Position {
	switch a {
	case marky.AlignCenter:
		return lipgloss.Center
	case marky.AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
