package goldmark

import (
	"context"
	"strings"

	"github.com/fwojciec/marky"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"golang.org/x/sync/errgroup"
)

// ConvertNode converts one goldmark node at the given nesting. A node may
// expand to zero, one or several stable nodes; for example a paragraph
// holding an image splits into sibling paragraphs and images.
func (c *Converter) ConvertNode(ctx context.Context, meta marky.NodeMetadata, node ast.Node, source []byte) ([]marky.Composable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case *ast.Document:
		return c.convertChildren(ctx, meta, n, source)

	case *ast.Heading:
		return []marky.Composable{marky.Headline{
			Level:    headlineLevel(n.Level),
			Children: convertInlineChildren(meta.IncLevel(), n, source),
			Metadata: meta,
		}}, nil

	case *ast.ThematicBreak:
		return []marky.Composable{marky.Rule{Metadata: meta}}, nil

	case *ast.Paragraph, *ast.TextBlock:
		return splitOnImage(meta, n, source), nil

	case *ast.FencedCodeBlock:
		return []marky.Composable{marky.CodeBlock{
			Content:  trimTrailing(joinLines(n.Lines(), source)),
			Language: infoString(n, source),
			Metadata: meta,
		}}, nil

	case *ast.CodeBlock:
		return []marky.Composable{marky.CodeBlock{
			Content:  trimTrailing(Dedent(indentedLines(n.Lines(), source))),
			Metadata: meta,
		}}, nil

	case *ast.Blockquote:
		children, err := c.convertChildren(ctx, meta.IncQuoteLevel(), n, source)
		if err != nil {
			return nil, err
		}
		return []marky.Composable{marky.BlockQuote{Children: children, Metadata: meta}}, nil

	case *extast.Table:
		return c.convertTable(ctx, meta, n, source)

	case *ast.List:
		return c.convertList(ctx, meta, n, source)

	default:
		var texts []marky.Composable
		for _, a := range convertInlineChildren(meta, n, source) {
			texts = append(texts, marky.TextNode{Node: a, Metadata: meta})
		}
		if len(texts) == 0 {
			return nil, nil
		}
		return marky.Bundle(texts, meta), nil
	}
}

// convertChildren converts the children of node concurrently and joins the
// results in source order.
func (c *Converter) convertChildren(ctx context.Context, meta marky.NodeMetadata, node ast.Node, source []byte) ([]marky.Composable, error) {
	return fanOut(ctx, c.concurrency, childNodes(node), func(ctx context.Context, child ast.Node) ([]marky.Composable, error) {
		return c.ConvertNode(ctx, meta, child, source)
	})
}

// fanOut runs convert for every item in its own goroutine and concatenates
// the results in input order. The first error cancels the remaining items
// and fanOut returns only after all of them have finished.
func fanOut[T, R any](ctx context.Context, limit int, items []T, convert func(ctx context.Context, item T) ([]R, error)) ([]R, error) {
	if len(items) == 0 {
		return nil, ctx.Err()
	}
	results := make([][]R, len(items))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			out, err := convert(ctx, item)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var n int
	for _, r := range results {
		n += len(r)
	}
	out := make([]R, 0, n)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// infoString returns the whole trimmed info string of a fenced block, or
// an empty string when there is none.
func infoString(n *ast.FencedCodeBlock, source []byte) string {
	if n.Info == nil {
		return ""
	}
	return strings.TrimSpace(string(n.Info.Segment.Value(source)))
}

func childNodes(node ast.Node) []ast.Node {
	var nodes []ast.Node
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		nodes = append(nodes, c)
	}
	return nodes
}

func headlineLevel(depth int) int {
	switch {
	case depth < 1:
		return 1
	case depth > 5:
		return 6
	default:
		return depth
	}
}

// splitOnImage turns a paragraph into alternating Paragraph and Image nodes.
// Runs of non-image inline children become one Paragraph each; every image
// becomes its own Image node, in source order.
func splitOnImage(meta marky.NodeMetadata, node ast.Node, source []byte) []marky.Composable {
	inner := meta.IncParagraphLevel()
	var (
		out     []marky.Composable
		pending []ast.Node
	)

	flush := func() {
		if len(pending) == 0 {
			return
		}
		var texts []marky.Composable
		for _, child := range pending {
			for _, a := range convertInline(inner, child, source) {
				texts = append(texts, marky.TextNode{Node: a, Metadata: inner})
			}
		}
		pending = nil
		if len(texts) == 0 {
			return
		}
		out = append(out, marky.Paragraph{Children: marky.Bundle(texts, inner), Metadata: meta})
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		img, ok := child.(*ast.Image)
		if !ok {
			pending = append(pending, child)
			continue
		}
		flush()
		out = append(out, marky.Image{
			URL:      string(img.Destination),
			AltText:  inlineText(img, source),
			Title:    string(img.Title),
			Metadata: meta,
		})
	}
	flush()
	return out
}
