// Package lipgloss renders marky stable node trees to ANSI-styled terminal
// output using lipgloss for styling and the layout package for tables.
package lipgloss

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/marky"
	"github.com/rivo/uniseg"
)

// Render returns ANSI-styled terminal output for nodes. Paragraphs and list
// items are word-wrapped to width; code blocks are rendered without reflow
// and tables are narrowed to fit width where their cell bounds allow.
func Render(nodes []marky.Composable, width int, theme marky.Theme) string {
	if len(nodes) == 0 {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.blocks(nodes, width)
}

type renderer struct {
	theme    marky.Theme
	styles   Styles
	measurer *Measurer
}

func newRenderer(theme marky.Theme) *renderer {
	styles := NewStyles(theme)
	return &renderer{
		theme:    theme,
		styles:   styles,
		measurer: &Measurer{styles: styles},
	}
}

func (r *renderer) blocks(nodes []marky.Composable, width int) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s := r.block(n, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (r *renderer) block(node marky.Composable, width int) string {
	switch n := node.(type) {
	case marky.Headline:
		return wrap(r.styles.Heading.Render(r.inline(n.Children)), width)

	case marky.Paragraph:
		var b strings.Builder
		for _, c := range n.Children {
			if tn, ok := c.(marky.TextNode); ok {
				r.renderInline(tn.Node, &b)
				continue
			}
			b.WriteString(r.block(c, width))
		}
		return wrap(b.String(), width)

	case marky.TextNode:
		var b strings.Builder
		r.renderInline(n.Node, &b)
		return wrap(b.String(), width)

	case marky.Image:
		label := n.AltText
		if label == "" {
			label = "image"
		}
		return wrap(r.styles.Muted.Render(fmt.Sprintf("[%s] (%s)", label, n.URL)), width)

	case marky.Rule:
		return r.styles.Muted.Render(strings.Repeat("─", width))

	case marky.CodeBlock:
		var b strings.Builder
		if n.Language != "" {
			b.WriteString(r.styles.Muted.Render(n.Language))
			b.WriteString("\n")
		}
		gutter := r.styles.Muted.Render("│") + " "
		lines := strings.Split(n.Content, "\n")
		for i, line := range lines {
			b.WriteString(gutter + r.styles.Code.Render(line))
			if i < len(lines)-1 {
				b.WriteString("\n")
			}
		}
		return b.String()

	case marky.BlockQuote:
		inner := r.blocks(n.Children, max(width-2, 10))
		return prefixLines(inner, r.styles.Muted.Render("│")+" ")

	case marky.ListBlock:
		return r.list(n, width)

	case marky.TableBlock:
		return r.table(n, width)

	default:
		return ""
	}
}

var bullets = []string{"•", "◦", "▪"}

// listMarker returns the marker text of an item at level, including its
// trailing space.
func listMarker(t marky.ListItemType, level int) string {
	switch t := t.(type) {
	case marky.Ordered:
		return fmt.Sprintf("%d. ", t.Index)
	case marky.Task:
		if t.Completed {
			return "[x] "
		}
		return "[ ] "
	default:
		return bullets[level%len(bullets)] + " "
	}
}

func (r *renderer) list(n marky.ListBlock, width int) string {
	var lines []string
	indent := ""
	for _, e := range n.Entries {
		switch e := e.(type) {
		case marky.ListItem:
			marker := listMarker(e.Type, n.Metadata.ListLevel)
			indent = strings.Repeat(" ", uniseg.StringWidth(marker))
			lines = append(lines, r.listItem(marker, indent, r.inline(e.Children), width))
		case marky.ListNode:
			inner := r.block(e.Node, max(width-len(indent), 10))
			lines = append(lines, prefixLines(inner, indent))
		}
	}
	return strings.Join(lines, "\n")
}

// listItem wraps content next to its marker with continuation lines
// indented to the marker's display width.
func (r *renderer) listItem(marker, indent, content string, width int) string {
	wrapped := wrap(content, max(width-len(indent), 10))
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = r.styles.Muted.Render(marker) + line
			continue
		}
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// inline renders runs of inline nodes to a single styled string.
func (r *renderer) inline(nodes []marky.Annotated) string {
	var b strings.Builder
	for _, n := range nodes {
		r.renderInline(n, &b)
	}
	return b.String()
}

func (r *renderer) renderInline(node marky.Annotated, b *strings.Builder) {
	switch n := node.(type) {
	case marky.PlainText:
		b.WriteString(n.Text)
	case marky.Bold:
		b.WriteString(r.styles.Bold.Render(r.inline(n.Children)))
	case marky.Italic:
		b.WriteString(r.styles.Italic.Render(r.inline(n.Children)))
	case marky.Strikethrough:
		b.WriteString(r.styles.Strike.Render(r.inline(n.Children)))
	case marky.InlineCode:
		b.WriteString(r.styles.Code.Render(n.Code))
	case marky.Link:
		label := r.inline(n.Children)
		b.WriteString(r.styles.Link.Render(label))
		if marky.PlainString(n.Children) != n.URL {
			b.WriteString(" ")
			b.WriteString(r.styles.Muted.Render("(" + n.URL + ")"))
		}
	case marky.Subscript:
		b.WriteString(script(marky.PlainString(n.Children), subscripts, r.styles.Subscript))
	case marky.Superscript:
		b.WriteString(script(marky.PlainString(n.Children), superscripts, r.styles.Subscript))
	case marky.ParagraphText:
		for _, c := range n.Children {
			r.renderInline(c, b)
		}
	}
}

var (
	subscripts   = []rune("₀₁₂₃₄₅₆₇₈₉₊₋₌₍₎")
	superscripts = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹⁺⁻⁼⁽⁾")
)

// script maps text to Unicode sub- or superscript characters when every
// character has one, and falls back to a faint style otherwise.
func script(s string, table []rune, fallback lipgloss.Style) string {
	const source = "0123456789+-=()"
	out := make([]rune, 0, len(s))
	for _, c := range s {
		i := strings.IndexRune(source, c)
		if i < 0 {
			return fallback.Render(s)
		}
		out = append(out, table[i])
	}
	return string(out)
}

func wrap(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
