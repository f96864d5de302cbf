package json

import (
	"fmt"

	"github.com/fwojciec/marky"
)

// layoutDTO is the JSON representation of a resolved TableLayout.
type layoutDTO struct {
	Columns      int           `json:"columns"`
	Rows         int           `json:"rows"`
	ColumnWidths map[int]int   `json:"column_widths"`
	RowHeights   map[int]int   `json:"row_heights"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Cells        []cellRectDTO `json:"cells"`
	Dividers     []dividerDTO  `json:"dividers"`
}

type rectDTO struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type cellRectDTO struct {
	Row    int     `json:"row"`
	Column int     `json:"column"`
	Rect   rectDTO `json:"rect"`
}

type dividerDTO struct {
	Kind      string  `json:"kind"`
	Rect      rectDTO `json:"rect"`
	Thickness int     `json:"thickness"`
	Color     string  `json:"color,omitempty"`
}

func marshalRect(r marky.Rect) rectDTO {
	return rectDTO{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func unmarshalRect(r rectDTO) marky.Rect {
	return marky.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func marshalLayout(l marky.TableLayout) layoutDTO {
	dto := layoutDTO{
		Columns:      l.Geometry.Columns,
		Rows:         l.Geometry.Rows,
		ColumnWidths: l.Geometry.ColumnWidths,
		RowHeights:   l.Geometry.RowHeights,
		Width:        l.Size.Width,
		Height:       l.Size.Height,
	}
	if l.Cells != nil {
		dto.Cells = make([]cellRectDTO, len(l.Cells))
	}
	for i, c := range l.Cells {
		dto.Cells[i] = cellRectDTO{Row: c.Row, Column: c.Column, Rect: marshalRect(c.Rect)}
	}
	if l.Dividers != nil {
		dto.Dividers = make([]dividerDTO, len(l.Dividers))
	}
	for i, d := range l.Dividers {
		dto.Dividers[i] = dividerDTO{
			Kind:      string(d.Kind),
			Rect:      marshalRect(d.Rect),
			Thickness: d.Thickness,
			Color:     string(d.Color),
		}
	}
	return dto
}

func unmarshalLayout(dto layoutDTO) (marky.TableLayout, error) {
	l := marky.TableLayout{
		Geometry: marky.Geometry{
			Columns:      dto.Columns,
			Rows:         dto.Rows,
			ColumnWidths: dto.ColumnWidths,
			RowHeights:   dto.RowHeights,
		},
		Size: marky.Size{Width: dto.Width, Height: dto.Height},
	}
	if dto.Cells != nil {
		l.Cells = make([]marky.CellPlacement, len(dto.Cells))
	}
	for i, c := range dto.Cells {
		l.Cells[i] = marky.CellPlacement{Row: c.Row, Column: c.Column, Rect: unmarshalRect(c.Rect)}
	}
	if dto.Dividers != nil {
		l.Dividers = make([]marky.DividerRect, len(dto.Dividers))
	}
	for i, d := range dto.Dividers {
		kind, err := unmarshalDividerKind(d.Kind)
		if err != nil {
			return marky.TableLayout{}, fmt.Errorf("divider %d: %w", i, err)
		}
		l.Dividers[i] = marky.DividerRect{
			Kind:      kind,
			Rect:      unmarshalRect(d.Rect),
			Thickness: d.Thickness,
			Color:     marky.Color(d.Color),
		}
	}
	return l, nil
}

func unmarshalDividerKind(s string) (marky.DividerKind, error) {
	switch k := marky.DividerKind(s); k {
	case marky.DividerLeft, marky.DividerTop, marky.DividerRight, marky.DividerBottom,
		marky.DividerHeader, marky.DividerBodyHorizontal, marky.DividerBodyVertical:
		return k, nil
	default:
		return "", fmt.Errorf("divider kind %q: %w", s, marky.ErrUnsupportedFormat)
	}
}
