package goldmark

import (
	"bytes"

	"github.com/fwojciec/marky"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// convertInlineChildren converts every inline child of node.
func convertInlineChildren(meta marky.NodeMetadata, node ast.Node, source []byte) []marky.Annotated {
	var out []marky.Annotated
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, convertInline(meta, c, source)...)
	}
	return out
}

func convertInline(meta marky.NodeMetadata, node ast.Node, source []byte) []marky.Annotated {
	switch n := node.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(source))
		switch {
		case n.HardLineBreak():
			s += "\n"
		case n.SoftLineBreak():
			s += " "
		}
		return plain(meta, s)

	case *ast.String:
		return plain(meta, string(n.Value))

	case *ast.Emphasis:
		children := convertInlineChildren(meta.IncLevel(), n, source)
		if n.Level == 1 {
			return []marky.Annotated{marky.Italic{Children: children, Metadata: meta}}
		}
		// Goldmark nests ***x*** as emphasis inside strong emphasis, so any
		// level above one is bold.
		return []marky.Annotated{marky.Bold{Children: children, Metadata: meta}}

	case *ast.CodeSpan:
		return []marky.Annotated{marky.InlineCode{Code: inlineText(n, source), Metadata: meta}}

	case *ast.Link:
		return []marky.Annotated{marky.Link{
			URL:      string(n.Destination),
			Title:    string(n.Title),
			Children: convertInlineChildren(meta.IncLevel(), n, source),
			Metadata: meta,
		}}

	case *ast.AutoLink:
		return []marky.Annotated{marky.Link{
			URL:      string(n.URL(source)),
			Children: plain(meta.IncLevel(), string(n.Label(source))),
			Metadata: meta,
		}}

	case *extast.Strikethrough:
		return []marky.Annotated{marky.Strikethrough{
			Children: convertInlineChildren(meta.IncLevel(), n, source),
			Metadata: meta,
		}}

	case *Subscript:
		return []marky.Annotated{marky.Subscript{
			Children: convertInlineChildren(meta.IncLevel(), n, source),
			Metadata: meta,
		}}

	case *Superscript:
		return []marky.Annotated{marky.Superscript{
			Children: convertInlineChildren(meta.IncLevel(), n, source),
			Metadata: meta,
		}}

	case *ast.Image:
		// Images only stand alone at paragraph level; elsewhere the alt
		// text takes their place.
		return plain(meta, inlineText(n, source))

	case *extast.TaskCheckBox, *ast.RawHTML:
		return nil

	default:
		return convertInlineChildren(meta, n, source)
	}
}

func plain(meta marky.NodeMetadata, s string) []marky.Annotated {
	if s == "" {
		return nil
	}
	return []marky.Annotated{marky.PlainText{Text: s, Metadata: meta}}
}

// inlineText collects the unstyled text below node.
func inlineText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
