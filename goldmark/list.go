package goldmark

import (
	"context"

	"github.com/fwojciec/marky"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

type listItem struct {
	index int // 1-based position among siblings
	node  ast.Node
}

func (c *Converter) convertList(ctx context.Context, meta marky.NodeMetadata, n *ast.List, source []byte) ([]marky.Composable, error) {
	var items []listItem
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		items = append(items, listItem{index: len(items) + 1, node: child})
	}

	ordered := n.IsOrdered()
	entries, err := fanOut(ctx, c.concurrency, items, func(ctx context.Context, item listItem) ([]marky.ListEntry, error) {
		return c.convertListItem(ctx, meta, ordered, item, source)
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return []marky.Composable{marky.ListBlock{Entries: entries, Metadata: meta}}, nil
}

// convertListItem emits a ListItem built from the item's first child and
// then one ListNode per stable node converted from the remaining children.
// An item whose first child is missing or carries no inline content is
// dropped.
func (c *Converter) convertListItem(ctx context.Context, meta marky.NodeMetadata, ordered bool, item listItem, source []byte) ([]marky.ListEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	first := item.node.FirstChild()
	if first == nil {
		return nil, nil
	}

	var children []marky.Annotated
	switch first.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		children = convertInlineChildren(meta.IncLevel(), first, source)
	}
	if len(children) == 0 {
		return nil, nil
	}

	entries := []marky.ListEntry{marky.ListItem{
		Type:     itemType(ordered, item.index, first),
		Children: children,
		Metadata: meta,
	}}

	nested, err := fanOut(ctx, c.concurrency, childNodes(item.node)[1:], func(ctx context.Context, child ast.Node) ([]marky.Composable, error) {
		if _, ok := child.(*ast.List); ok {
			return c.ConvertNode(ctx, meta.IncListLevel(), child, source)
		}
		return c.ConvertNode(ctx, meta.IncLevel(), child, source)
	})
	if err != nil {
		return nil, err
	}
	for _, node := range nested {
		entries = append(entries, marky.ListNode{Node: node})
	}
	return entries, nil
}

func itemType(ordered bool, index int, first ast.Node) marky.ListItemType {
	if ordered {
		return marky.Ordered{Index: index}
	}
	if box, ok := first.FirstChild().(*extast.TaskCheckBox); ok {
		return marky.Task{Completed: box.IsChecked}
	}
	return marky.Unordered{}
}
