// Package layout measures and places table cells and resolves the
// rectangles of table dividers and outlines.
package layout

import "github.com/fwojciec/marky"

// Table lays out one table in two passes. It owns the measurement cache of
// its last pass and is not safe for concurrent use; independent tables are
// laid out with independent Table values.
type Table struct {
	table    marky.TableBlock
	style    marky.TableStyle
	measurer marky.CellMeasurer

	columnWidths map[int]int
	rowHeights   map[int]int
	columns      int
	rows         int
	valid        bool
}

// New creates a Table for laying out table with the given style, measuring
// cell content with measurer.
func New(table marky.TableBlock, style marky.TableStyle, measurer marky.CellMeasurer) *Table {
	return &Table{table: table, style: style, measurer: measurer}
}

// SetContent replaces the table content and invalidates the cache.
func (t *Table) SetContent(table marky.TableBlock) {
	t.table = table
	t.invalidate()
}

// SetStyle replaces the style and invalidates the cache.
func (t *Table) SetStyle(style marky.TableStyle) {
	t.style = style
	t.invalidate()
}

func (t *Table) invalidate() {
	t.columnWidths = nil
	t.rowHeights = nil
	t.columns = 0
	t.rows = 0
	t.valid = false
}

// Geometry returns the geometry of the last Measure call. It reports false
// when the cache was invalidated or never filled.
func (t *Table) Geometry() (marky.Geometry, bool) {
	if !t.valid {
		return marky.Geometry{}, false
	}
	return t.geometry(), true
}

func (t *Table) geometry() marky.Geometry {
	widths := make(map[int]int, len(t.columnWidths))
	for k, v := range t.columnWidths {
		widths[k] = v
	}
	heights := make(map[int]int, len(t.rowHeights))
	for k, v := range t.rowHeights {
		heights[k] = v
	}
	return marky.Geometry{
		Columns:      t.columns,
		Rows:         t.rows,
		ColumnWidths: widths,
		RowHeights:   heights,
	}
}

// Measure recomputes the whole layout. Pass one sizes every column and row
// from the intrinsic size of its cells, clamped to the style's cell bounds.
// Pass two re-measures every cell with its column width and row height as
// fixed constraints and places it on the grid.
//
// Rows with fewer cells than others are tolerated: a missing cell
// contributes nothing to its column or row.
func (t *Table) Measure() marky.TableLayout {
	t.invalidate()
	rows := t.table.Rows()
	t.rows = len(rows)
	for _, row := range rows {
		t.columns = max(t.columns, len(row.Cells))
	}

	minW, maxW := t.style.WidthBounds()
	minH, maxH := t.style.HeightBounds()
	loose := marky.Constraints{MaxWidth: maxW, MaxHeight: maxH}

	t.columnWidths = make(map[int]int, t.columns)
	t.rowHeights = make(map[int]int, t.rows)
	for r, row := range rows {
		for c, cell := range row.Cells {
			size := loose.Constrain(t.measurer.MeasureCell(cell, loose))
			t.columnWidths[c] = max(t.columnWidths[c], size.Width)
			t.rowHeights[r] = max(t.rowHeights[r], size.Height)
		}
	}
	for c := 0; c < t.columns; c++ {
		t.columnWidths[c] = clamp(t.columnWidths[c], minW, maxW)
	}
	for r := 0; r < t.rows; r++ {
		t.rowHeights[r] = clamp(t.rowHeights[r], minH, maxH)
	}
	t.valid = true

	geom := t.geometry()
	g := resolveGrid(geom, t.style)

	var cells []marky.CellPlacement
	for r, row := range rows {
		for c, cell := range row.Cells {
			fixed := marky.Fixed(marky.Size{Width: t.columnWidths[c], Height: t.rowHeights[r]})
			size := fixed.Constrain(t.measurer.MeasureCell(cell, fixed))
			cells = append(cells, marky.CellPlacement{
				Row:    r,
				Column: c,
				Rect:   marky.Rect{X: g.xs[c], Y: g.ys[r], Width: size.Width, Height: size.Height},
			})
		}
	}

	return marky.TableLayout{
		Geometry: geom,
		Size:     g.size,
		Cells:    cells,
		Dividers: dividers(geom, t.style, g),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// grid holds the start offset of every column and row and the total size.
type grid struct {
	xs   []int
	ys   []int
	size marky.Size
}

// resolveGrid accumulates offsets left to right and top to bottom. Every
// divider reserves its configured thickness whether or not it is drawn.
func resolveGrid(g marky.Geometry, s marky.TableStyle) grid {
	left, top := s.Left.Reserved(), s.Top.Reserved()
	vertical := s.BodyVertical.Reserved()
	horizontal := s.BodyHorizontal.Reserved()
	header := s.Header.Reserved()

	out := grid{xs: make([]int, g.Columns), ys: make([]int, g.Rows)}

	x := left
	for c := 0; c < g.Columns; c++ {
		if c > 0 {
			x += vertical
		}
		out.xs[c] = x
		x += g.ColumnWidths[c]
	}
	out.size.Width = x + s.Right.Reserved()

	y := top
	for r := 0; r < g.Rows; r++ {
		if r > 1 {
			y += horizontal
		}
		out.ys[r] = y
		y += g.RowHeights[r]
		// The header divider is reserved even when no body row follows.
		if r == 0 {
			y += header
		}
	}
	out.size.Height = y + s.Bottom.Reserved()
	return out
}
