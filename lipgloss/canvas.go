package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/marky"
)

const (
	flagH uint8 = 1 << iota // part of a horizontal divider
	flagV                   // part of a vertical divider
)

const (
	left uint8 = 1 << iota
	right
	up
	down
)

// glyphSet maps the set of connected neighbours of a divider position to a
// character of b.
func glyphSet(b lipgloss.Border) map[uint8]string {
	return map[uint8]string{
		left | right:             b.Top,
		left:                     b.Top,
		right:                    b.Top,
		up | down:                b.Left,
		up:                       b.Left,
		down:                     b.Left,
		right | down:             b.TopLeft,
		left | down:              b.TopRight,
		right | up:               b.BottomLeft,
		left | up:                b.BottomRight,
		left | right | down:      b.MiddleTop,
		left | right | up:        b.MiddleBottom,
		up | down | right:        b.MiddleLeft,
		up | down | left:         b.MiddleRight,
		left | right | up | down: b.Middle,
	}
}

// canvas is a grid of terminal columns holding styled cell text and
// divider positions.
type canvas struct {
	width, height int
	cells         [][]string // "" marks a column covered by text to its left
	flags         [][]uint8
	colors        [][]marky.Color
	glyphs        map[uint8]string
}

func newCanvas(size marky.Size, border lipgloss.Border) *canvas {
	c := &canvas{width: size.Width, height: size.Height, glyphs: glyphSet(border)}
	c.cells = make([][]string, size.Height)
	c.flags = make([][]uint8, size.Height)
	c.colors = make([][]marky.Color, size.Height)
	for y := range c.cells {
		c.cells[y] = make([]string, size.Width)
		for x := range c.cells[y] {
			c.cells[y][x] = " "
		}
		c.flags[y] = make([]uint8, size.Width)
		c.colors[y] = make([]marky.Color, size.Width)
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// text places s, which is span columns wide, at (x, y).
func (c *canvas) text(x, y int, s string, span int) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y][x] = s
	for i := 1; i < span && x+i < c.width; i++ {
		c.cells[y][x+i] = ""
	}
}

func (c *canvas) divider(d marky.DividerRect) {
	flag := flagV
	if d.Kind.Horizontal() {
		flag = flagH
	}
	for y := d.Rect.Y; y < d.Rect.Y+d.Rect.Height; y++ {
		for x := d.Rect.X; x < d.Rect.X+d.Rect.Width; x++ {
			if !c.inside(x, y) {
				continue
			}
			c.flags[y][x] |= flag
			c.colors[y][x] = d.Color
		}
	}
}

func (c *canvas) has(x, y int, flag uint8) bool {
	return c.inside(x, y) && c.flags[y][x]&flag != 0
}

func (c *canvas) glyph(x, y int) string {
	var mask uint8
	if c.has(x-1, y, flagH) {
		mask |= left
	}
	if c.has(x+1, y, flagH) {
		mask |= right
	}
	if c.has(x, y-1, flagV) {
		mask |= up
	}
	if c.has(x, y+1, flagV) {
		mask |= down
	}
	if g, ok := c.glyphs[mask]; ok {
		return g
	}
	if c.flags[y][x]&flagH != 0 {
		return c.glyphs[left|right]
	}
	return c.glyphs[up|down]
}

func (c *canvas) render() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var b strings.Builder
		for x := 0; x < c.width; x++ {
			if c.flags[y][x] != 0 {
				style := lipgloss.NewStyle().Foreground(Color(c.colors[y][x]))
				b.WriteString(style.Render(c.glyph(x, y)))
				continue
			}
			b.WriteString(c.cells[y][x])
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
