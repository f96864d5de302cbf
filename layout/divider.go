package layout

import "github.com/fwojciec/marky"

// Dividers resolves the draw rectangles of every visible divider and
// outline segment of a table with geometry g. Segments whose thickness is
// zero or whose color is transparent are left out.
func Dividers(g marky.Geometry, s marky.TableStyle) []marky.DividerRect {
	return dividers(g, s, resolveGrid(g, s))
}

func dividers(g marky.Geometry, s marky.TableStyle, gr grid) []marky.DividerRect {
	width, height := gr.size.Width, gr.size.Height
	left, top := s.Left.Reserved(), s.Top.Reserved()
	right, bottom := s.Right.Reserved(), s.Bottom.Reserved()
	innerWidth := width - left - right
	innerHeight := height - top - bottom

	var out []marky.DividerRect
	add := func(kind marky.DividerKind, d marky.Divider, r marky.Rect) {
		if !d.Visible() || r.Empty() {
			return
		}
		out = append(out, marky.DividerRect{Kind: kind, Rect: r, Thickness: d.Thickness, Color: d.Color})
	}

	add(marky.DividerTop, s.Top, marky.Rect{X: 0, Y: 0, Width: width, Height: top})
	add(marky.DividerLeft, s.Left, marky.Rect{X: 0, Y: 0, Width: left, Height: height})
	add(marky.DividerRight, s.Right, marky.Rect{X: width - right, Y: 0, Width: right, Height: height})
	add(marky.DividerBottom, s.Bottom, marky.Rect{X: 0, Y: height - bottom, Width: width, Height: bottom})

	if g.Rows > 1 {
		add(marky.DividerHeader, s.Header, marky.Rect{
			X: left, Y: gr.ys[0] + g.RowHeights[0], Width: innerWidth, Height: s.Header.Reserved(),
		})
	}
	for r := 1; r < g.Rows-1; r++ {
		add(marky.DividerBodyHorizontal, s.BodyHorizontal, marky.Rect{
			X: left, Y: gr.ys[r] + g.RowHeights[r], Width: innerWidth, Height: s.BodyHorizontal.Reserved(),
		})
	}
	for c := 0; c < g.Columns-1; c++ {
		add(marky.DividerBodyVertical, s.BodyVertical, marky.Rect{
			X: gr.xs[c] + g.ColumnWidths[c], Y: top, Width: s.BodyVertical.Reserved(), Height: innerHeight,
		})
	}
	return out
}
