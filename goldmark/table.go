package goldmark

import (
	"context"

	"github.com/fwojciec/marky"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// convertTable converts the header and every body row concurrently. Rows
// keep whatever cell count the source gave them.
func (c *Converter) convertTable(ctx context.Context, meta marky.NodeMetadata, n *extast.Table, source []byte) ([]marky.Composable, error) {
	var (
		head ast.Node
		rows []ast.Node
	)
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.(type) {
		case *extast.TableHeader:
			head = child
		case *extast.TableRow:
			rows = append(rows, child)
		}
	}
	if head == nil {
		return nil, nil
	}

	cellMeta := meta.IncLevel()
	converted, err := fanOut(ctx, c.concurrency, append([]ast.Node{head}, rows...), func(ctx context.Context, row ast.Node) ([]marky.TableRow, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []marky.TableRow{convertRow(cellMeta, row, source)}, nil
	})
	if err != nil {
		return nil, err
	}
	return []marky.Composable{marky.TableBlock{
		Head:     converted[0],
		Body:     converted[1:],
		Metadata: meta,
	}}, nil
}

func convertRow(meta marky.NodeMetadata, row ast.Node, source []byte) marky.TableRow {
	var cells []marky.TableCell
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*extast.TableCell)
		if !ok {
			continue
		}
		cells = append(cells, marky.TableCell{
			Children:  convertInlineChildren(meta, cell, source),
			Alignment: alignment(cell.Alignment),
		})
	}
	return marky.TableRow{Cells: cells}
}

func alignment(a extast.Alignment) marky.Alignment {
	switch a {
	case extast.AlignCenter:
		return marky.AlignCenter
	case extast.AlignRight:
		return marky.AlignEnd
	default:
		return marky.AlignStart
	}
}
