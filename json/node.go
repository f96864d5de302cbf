package json

import (
	"fmt"

	"github.com/fwojciec/marky"
)

// nodeDTO is the JSON representation of a Composable node with a type
// discriminator.
type nodeDTO struct {
	Type     string      `json:"type"`
	Meta     metaDTO     `json:"meta"`
	Level    *int        `json:"level,omitempty"`
	Text     []inlineDTO `json:"text,omitempty"`
	Inline   *inlineDTO  `json:"inline,omitempty"`
	Children []nodeDTO   `json:"children,omitempty"`
	URL      *string     `json:"url,omitempty"`
	AltText  *string     `json:"alt_text,omitempty"`
	Title    *string     `json:"title,omitempty"`
	Content  *string     `json:"content,omitempty"`
	Language *string     `json:"language,omitempty"`
	Head     *rowDTO     `json:"head,omitempty"`
	Body     []rowDTO    `json:"body,omitempty"`
	Entries  []entryDTO  `json:"entries,omitempty"`
}

type rowDTO struct {
	Cells []cellDTO `json:"cells"`
}

type cellDTO struct {
	Alignment string      `json:"alignment"`
	Children  []inlineDTO `json:"children,omitempty"`
}

// entryDTO is the JSON representation of a ListEntry. Items carry their
// marker in ItemType; nodes wrap a nested block.
type entryDTO struct {
	Type      string      `json:"type"`
	ItemType  string      `json:"item_type,omitempty"`
	Index     *int        `json:"index,omitempty"`
	Completed *bool       `json:"completed,omitempty"`
	Meta      *metaDTO    `json:"meta,omitempty"`
	Text      []inlineDTO `json:"text,omitempty"`
	Node      *nodeDTO    `json:"node,omitempty"`
}

func marshalNodes(nodes []marky.Composable) ([]nodeDTO, error) {
	if nodes == nil {
		return nil, nil
	}
	result := make([]nodeDTO, len(nodes))
	for i, n := range nodes {
		dto, err := marshalNode(n)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		result[i] = dto
	}
	return result, nil
}

func marshalNode(n marky.Composable) (nodeDTO, error) {
	dto := nodeDTO{Meta: marshalMeta(n.Meta())}
	var err error
	switch v := n.(type) {
	case marky.Headline:
		dto.Type = "headline"
		dto.Level = &v.Level
		dto.Text, err = marshalInlines(v.Children)
	case marky.Paragraph:
		dto.Type = "paragraph"
		dto.Children, err = marshalNodes(v.Children)
	case marky.Image:
		dto.Type = "image"
		dto.URL = &v.URL
		dto.AltText = &v.AltText
		dto.Title = &v.Title
	case marky.Rule:
		dto.Type = "rule"
	case marky.CodeBlock:
		dto.Type = "code_block"
		dto.Content = &v.Content
		dto.Language = &v.Language
	case marky.BlockQuote:
		dto.Type = "block_quote"
		dto.Children, err = marshalNodes(v.Children)
	case marky.TableBlock:
		dto.Type = "table"
		err = marshalTable(v, &dto)
	case marky.ListBlock:
		dto.Type = "list"
		dto.Entries, err = marshalEntries(v.Entries)
	case marky.TextNode:
		dto.Type = "text"
		var inline inlineDTO
		inline, err = marshalInline(v.Node)
		dto.Inline = &inline
	default:
		return nodeDTO{}, fmt.Errorf("unknown composable type: %T", n)
	}
	if err != nil {
		return nodeDTO{}, err
	}
	return dto, nil
}

func marshalTable(t marky.TableBlock, dto *nodeDTO) error {
	head, err := marshalRow(t.Head)
	if err != nil {
		return fmt.Errorf("head: %w", err)
	}
	dto.Head = &head
	if t.Body == nil {
		return nil
	}
	dto.Body = make([]rowDTO, len(t.Body))
	for i, row := range t.Body {
		r, err := marshalRow(row)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		dto.Body[i] = r
	}
	return nil
}

func marshalRow(row marky.TableRow) (rowDTO, error) {
	cells := make([]cellDTO, len(row.Cells))
	for i, c := range row.Cells {
		children, err := marshalInlines(c.Children)
		if err != nil {
			return rowDTO{}, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = cellDTO{Alignment: string(c.Alignment), Children: children}
	}
	return rowDTO{Cells: cells}, nil
}

func marshalEntries(entries []marky.ListEntry) ([]entryDTO, error) {
	if entries == nil {
		return nil, nil
	}
	result := make([]entryDTO, len(entries))
	for i, e := range entries {
		switch v := e.(type) {
		case marky.ListItem:
			dto, err := marshalItem(v)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			result[i] = dto
		case marky.ListNode:
			node, err := marshalNode(v.Node)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			result[i] = entryDTO{Type: "node", Node: &node}
		default:
			return nil, fmt.Errorf("entry %d: unknown list entry type: %T", i, e)
		}
	}
	return result, nil
}

func marshalItem(item marky.ListItem) (entryDTO, error) {
	text, err := marshalInlines(item.Children)
	if err != nil {
		return entryDTO{}, err
	}
	meta := marshalMeta(item.Metadata)
	dto := entryDTO{Type: "item", Meta: &meta, Text: text}
	switch t := item.Type.(type) {
	case marky.Ordered:
		dto.ItemType = "ordered"
		dto.Index = &t.Index
	case marky.Unordered:
		dto.ItemType = "unordered"
	case marky.Task:
		dto.ItemType = "task"
		dto.Completed = &t.Completed
	default:
		return entryDTO{}, fmt.Errorf("unknown list item type: %T", item.Type)
	}
	return dto, nil
}

func unmarshalNodes(dtos []nodeDTO) ([]marky.Composable, error) {
	if dtos == nil {
		return nil, nil
	}
	result := make([]marky.Composable, len(dtos))
	for i, dto := range dtos {
		n, err := unmarshalNode(dto)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		result[i] = n
	}
	return result, nil
}

func unmarshalNode(dto nodeDTO) (marky.Composable, error) {
	meta := unmarshalMeta(dto.Meta)
	switch dto.Type {
	case "headline":
		text, err := unmarshalInlines(dto.Text)
		if err != nil {
			return nil, err
		}
		return marky.Headline{Level: deref(dto.Level), Children: text, Metadata: meta}, nil
	case "paragraph":
		children, err := unmarshalNodes(dto.Children)
		if err != nil {
			return nil, err
		}
		return marky.Paragraph{Children: children, Metadata: meta}, nil
	case "image":
		return marky.Image{URL: deref(dto.URL), AltText: deref(dto.AltText), Title: deref(dto.Title), Metadata: meta}, nil
	case "rule":
		return marky.Rule{Metadata: meta}, nil
	case "code_block":
		return marky.CodeBlock{Content: deref(dto.Content), Language: deref(dto.Language), Metadata: meta}, nil
	case "block_quote":
		children, err := unmarshalNodes(dto.Children)
		if err != nil {
			return nil, err
		}
		return marky.BlockQuote{Children: children, Metadata: meta}, nil
	case "table":
		return unmarshalTable(dto, meta)
	case "list":
		entries, err := unmarshalEntries(dto.Entries)
		if err != nil {
			return nil, err
		}
		return marky.ListBlock{Entries: entries, Metadata: meta}, nil
	case "text":
		if dto.Inline == nil {
			return nil, fmt.Errorf("text node without inline content")
		}
		inline, err := unmarshalInline(*dto.Inline)
		if err != nil {
			return nil, err
		}
		return marky.TextNode{Node: inline, Metadata: meta}, nil
	default:
		return nil, fmt.Errorf("composable type %q: %w", dto.Type, marky.ErrUnsupportedFormat)
	}
}

func unmarshalTable(dto nodeDTO, meta marky.NodeMetadata) (marky.TableBlock, error) {
	t := marky.TableBlock{Metadata: meta}
	if dto.Head != nil {
		head, err := unmarshalRow(*dto.Head)
		if err != nil {
			return marky.TableBlock{}, fmt.Errorf("head: %w", err)
		}
		t.Head = head
	}
	if dto.Body != nil {
		t.Body = make([]marky.TableRow, len(dto.Body))
	}
	for i, r := range dto.Body {
		row, err := unmarshalRow(r)
		if err != nil {
			return marky.TableBlock{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		t.Body[i] = row
	}
	return t, nil
}

func unmarshalRow(dto rowDTO) (marky.TableRow, error) {
	if dto.Cells == nil {
		return marky.TableRow{}, nil
	}
	cells := make([]marky.TableCell, len(dto.Cells))
	for i, c := range dto.Cells {
		a, err := unmarshalAlignment(c.Alignment)
		if err != nil {
			return marky.TableRow{}, fmt.Errorf("cell %d: %w", i, err)
		}
		children, err := unmarshalInlines(c.Children)
		if err != nil {
			return marky.TableRow{}, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = marky.TableCell{Children: children, Alignment: a}
	}
	return marky.TableRow{Cells: cells}, nil
}

func unmarshalAlignment(s string) (marky.Alignment, error) {
	switch a := marky.Alignment(s); a {
	case marky.AlignStart, marky.AlignCenter, marky.AlignEnd:
		return a, nil
	default:
		return "", fmt.Errorf("alignment %q: %w", s, marky.ErrUnsupportedFormat)
	}
}

func unmarshalEntries(dtos []entryDTO) ([]marky.ListEntry, error) {
	if dtos == nil {
		return nil, nil
	}
	result := make([]marky.ListEntry, len(dtos))
	for i, dto := range dtos {
		switch dto.Type {
		case "item":
			item, err := unmarshalItem(dto)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			result[i] = item
		case "node":
			if dto.Node == nil {
				return nil, fmt.Errorf("entry %d: list node without block", i)
			}
			node, err := unmarshalNode(*dto.Node)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			result[i] = marky.ListNode{Node: node}
		default:
			return nil, fmt.Errorf("entry %d: list entry type %q: %w", i, dto.Type, marky.ErrUnsupportedFormat)
		}
	}
	return result, nil
}

func unmarshalItem(dto entryDTO) (marky.ListItem, error) {
	text, err := unmarshalInlines(dto.Text)
	if err != nil {
		return marky.ListItem{}, err
	}
	item := marky.ListItem{Children: text, Metadata: unmarshalMeta(deref(dto.Meta))}
	switch dto.ItemType {
	case "ordered":
		item.Type = marky.Ordered{Index: deref(dto.Index)}
	case "unordered":
		item.Type = marky.Unordered{}
	case "task":
		item.Type = marky.Task{Completed: deref(dto.Completed)}
	default:
		return marky.ListItem{}, fmt.Errorf("list item type %q: %w", dto.ItemType, marky.ErrUnsupportedFormat)
	}
	return item, nil
}
