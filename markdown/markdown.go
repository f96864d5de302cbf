// Package markdown converts and renders markdown text in one call, using
// goldmark for parsing and lipgloss for terminal output.
package markdown

import (
	"context"

	"github.com/fwojciec/marky"
	"github.com/fwojciec/marky/goldmark"
	"github.com/fwojciec/marky/lipgloss"
)

// Convert parses markdown source into the stable node tree.
func Convert(ctx context.Context, source string) ([]marky.Composable, error) {
	return goldmark.Convert(ctx, source)
}

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width. Code blocks are
// rendered at full width without reflow.
func Render(source string, width int, theme marky.Theme) string {
	if source == "" {
		return ""
	}
	nodes, err := Convert(context.Background(), source)
	if err != nil {
		return ""
	}
	return lipgloss.Render(nodes, width, theme)
}

// Layout returns the document with the layout of each of its tables, in
// document order, at the width Render gives that table. Tables inside block
// quotes and list items get the narrower width left by the quote bar or the
// item indent.
func Layout(nodes []marky.Composable, width int, theme marky.Theme) marky.Document {
	return marky.Document{Nodes: nodes, Tables: lipgloss.Layouts(nodes, width, theme)}
}
