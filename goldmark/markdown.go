// Package goldmark converts markdown into the marky stable node tree using
// goldmark for parsing.
package goldmark

import (
	"context"

	"github.com/fwojciec/marky"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// NewParser returns a goldmark parser configured with the extensions the
// converter understands: tables, task lists, bare-URL links and the
// Script extension for strikethrough, subscript and superscript.
func NewParser() parser.Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.TaskList,
			extension.Linkify,
			Script,
		),
	)
	return md.Parser()
}

// Option configures a Converter.
type Option func(*Converter)

// WithConcurrency limits the number of goroutines each fan-out group runs
// at once. Zero or less means no limit.
func WithConcurrency(n int) Option {
	return func(c *Converter) { c.concurrency = n }
}

// WithParser replaces the default parser.
func WithParser(p parser.Parser) Option {
	return func(c *Converter) { c.parser = p }
}

// Converter turns goldmark syntax trees into stable nodes. A Converter is
// safe for concurrent use.
type Converter struct {
	parser      parser.Parser
	concurrency int
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.parser == nil {
		c.parser = NewParser()
	}
	return c
}

// Parse parses source into a goldmark document.
func (c *Converter) Parse(source []byte) ast.Node {
	return c.parser.Parse(text.NewReader(source))
}

// Convert parses source and converts the whole document. The only error it
// returns is the context's.
func (c *Converter) Convert(ctx context.Context, source []byte) ([]marky.Composable, error) {
	if len(source) == 0 {
		return nil, ctx.Err()
	}
	return c.ConvertNode(ctx, marky.NodeMetadata{}, c.Parse(source), source)
}

// Convert parses and converts markdown source with a default Converter.
func Convert(ctx context.Context, source string) ([]marky.Composable, error) {
	return New().Convert(ctx, []byte(source))
}
