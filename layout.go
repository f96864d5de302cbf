package marky

import (
	"math"
	"strconv"
)

// Unbounded is the maximum length used for constraints without an upper
// bound.
const Unbounded = math.MaxInt

// Color is a terminal color: an ANSI index ("0".."255") or a hex value
// ("#rrggbb"). The zero value is transparent.
type Color string

// NoColor is the transparent color.
const NoColor Color = ""

// ANSI returns the color for an ANSI palette index. Negative indices are
// transparent.
func ANSI(index int) Color {
	if index < 0 {
		return NoColor
	}
	return Color(strconv.Itoa(index))
}

// Transparent reports whether c paints nothing.
func (c Color) Transparent() bool { return c == NoColor }

// Divider configures one divider or outline segment.
type Divider struct {
	Thickness int
	Color     Color
}

// Visible reports whether the divider is drawn. Layout reserves Thickness
// whether or not the divider is visible.
func (d Divider) Visible() bool {
	return d.Thickness > 0 && !d.Color.Transparent()
}

// Reserved returns the space layout sets aside for d, never negative.
func (d Divider) Reserved() int {
	if d.Thickness < 0 {
		return 0
	}
	return d.Thickness
}

// TableStyle is the configuration surface of the table layout engine. A
// zero CellMaxWidth or CellMaxHeight means unbounded.
type TableStyle struct {
	CellMinWidth  int
	CellMaxWidth  int
	CellMinHeight int
	CellMaxHeight int

	Left           Divider // Outline edges.
	Top            Divider
	Right          Divider
	Bottom         Divider
	Header         Divider // Between the header row and the first body row.
	BodyHorizontal Divider // Between body rows.
	BodyVertical   Divider // Between columns.
}

// DefaultTableStyle returns a style with unbounded cells and no dividers.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		CellMaxWidth:  Unbounded,
		CellMaxHeight: Unbounded,
	}
}

// WidthBounds returns the resolved [min, max] cell width.
func (s TableStyle) WidthBounds() (int, int) {
	return bounds(s.CellMinWidth, s.CellMaxWidth)
}

// HeightBounds returns the resolved [min, max] cell height.
func (s TableStyle) HeightBounds() (int, int) {
	return bounds(s.CellMinHeight, s.CellMaxHeight)
}

func bounds(lo, hi int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi <= 0 {
		hi = Unbounded
	}
	return lo, hi
}

// Size is a width and height in layout units.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in layout units.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Constraints bound a measurement. A measurer must return a size within
// them; when Min equals Max on an axis the size on that axis is fixed.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Fixed returns constraints that allow exactly s.
func Fixed(s Size) Constraints {
	return Constraints{MinWidth: s.Width, MaxWidth: s.Width, MinHeight: s.Height, MaxHeight: s.Height}
}

// Constrain clamps s into c.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// CellMeasurer reports the size a table cell's content needs within the
// given constraints.
type CellMeasurer interface {
	MeasureCell(cell TableCell, c Constraints) Size
}

// Geometry is the resolved grid of a table layout pass. Row 0 is the header.
type Geometry struct {
	Columns      int
	Rows         int
	ColumnWidths map[int]int
	RowHeights   map[int]int
}

// CellPlacement is the final rectangle of the cell at (Row, Column).
type CellPlacement struct {
	Row    int
	Column int
	Rect   Rect
}

// DividerKind identifies which configured divider a rectangle comes from.
type DividerKind string

const (
	DividerLeft           DividerKind = "left"
	DividerTop            DividerKind = "top"
	DividerRight          DividerKind = "right"
	DividerBottom         DividerKind = "bottom"
	DividerHeader         DividerKind = "header"
	DividerBodyHorizontal DividerKind = "body_horizontal"
	DividerBodyVertical   DividerKind = "body_vertical"
)

// Horizontal reports whether dividers of kind k run left to right.
func (k DividerKind) Horizontal() bool {
	switch k {
	case DividerTop, DividerBottom, DividerHeader, DividerBodyHorizontal:
		return true
	default:
		return false
	}
}

// DividerRect is a divider segment ready to paint.
type DividerRect struct {
	Kind      DividerKind
	Rect      Rect
	Thickness int
	Color     Color
}

// TableLayout is the output of one table layout pass.
type TableLayout struct {
	Geometry Geometry
	Size     Size
	Cells    []CellPlacement
	Dividers []DividerRect
}
