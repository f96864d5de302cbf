package json

import (
	"fmt"

	"github.com/fwojciec/marky"
)

type metaDTO struct {
	Level          int `json:"level"`
	QuoteLevel     int `json:"quote_level"`
	ListLevel      int `json:"list_level"`
	ParagraphLevel int `json:"paragraph_level"`
}

func marshalMeta(m marky.NodeMetadata) metaDTO {
	return metaDTO{Level: m.Level, QuoteLevel: m.QuoteLevel, ListLevel: m.ListLevel, ParagraphLevel: m.ParagraphLevel}
}

func unmarshalMeta(m metaDTO) marky.NodeMetadata {
	return marky.NodeMetadata{Level: m.Level, QuoteLevel: m.QuoteLevel, ListLevel: m.ListLevel, ParagraphLevel: m.ParagraphLevel}
}

// inlineDTO is the JSON representation of an Annotated node with a type
// discriminator.
type inlineDTO struct {
	Type     string      `json:"type"`
	Meta     metaDTO     `json:"meta"`
	Text     *string     `json:"text,omitempty"`
	Code     *string     `json:"code,omitempty"`
	URL      *string     `json:"url,omitempty"`
	Title    *string     `json:"title,omitempty"`
	Children []inlineDTO `json:"children,omitempty"`
}

func marshalInlines(nodes []marky.Annotated) ([]inlineDTO, error) {
	if nodes == nil {
		return nil, nil
	}
	result := make([]inlineDTO, len(nodes))
	for i, n := range nodes {
		dto, err := marshalInline(n)
		if err != nil {
			return nil, fmt.Errorf("inline %d: %w", i, err)
		}
		result[i] = dto
	}
	return result, nil
}

func marshalInline(n marky.Annotated) (inlineDTO, error) {
	dto := inlineDTO{Meta: marshalMeta(n.Meta())}
	switch v := n.(type) {
	case marky.PlainText:
		dto.Type = "plain_text"
		dto.Text = &v.Text
		return dto, nil
	case marky.InlineCode:
		dto.Type = "inline_code"
		dto.Code = &v.Code
		return dto, nil
	case marky.Link:
		dto.Type = "link"
		dto.URL = &v.URL
		dto.Title = &v.Title
	case marky.Bold:
		dto.Type = "bold"
	case marky.Italic:
		dto.Type = "italic"
	case marky.Strikethrough:
		dto.Type = "strikethrough"
	case marky.Subscript:
		dto.Type = "subscript"
	case marky.Superscript:
		dto.Type = "superscript"
	case marky.ParagraphText:
		dto.Type = "paragraph_text"
	default:
		return inlineDTO{}, fmt.Errorf("unknown annotated type: %T", n)
	}
	children, err := marshalInlines(marky.AnnotatedChildren(n))
	if err != nil {
		return inlineDTO{}, err
	}
	dto.Children = children
	return dto, nil
}

func unmarshalInlines(dtos []inlineDTO) ([]marky.Annotated, error) {
	if dtos == nil {
		return nil, nil
	}
	result := make([]marky.Annotated, len(dtos))
	for i, dto := range dtos {
		n, err := unmarshalInline(dto)
		if err != nil {
			return nil, fmt.Errorf("inline %d: %w", i, err)
		}
		result[i] = n
	}
	return result, nil
}

func unmarshalInline(dto inlineDTO) (marky.Annotated, error) {
	meta := unmarshalMeta(dto.Meta)
	children, err := unmarshalInlines(dto.Children)
	if err != nil {
		return nil, err
	}
	switch dto.Type {
	case "plain_text":
		return marky.PlainText{Text: deref(dto.Text), Metadata: meta}, nil
	case "inline_code":
		return marky.InlineCode{Code: deref(dto.Code), Metadata: meta}, nil
	case "link":
		return marky.Link{URL: deref(dto.URL), Title: deref(dto.Title), Children: children, Metadata: meta}, nil
	case "bold":
		return marky.Bold{Children: children, Metadata: meta}, nil
	case "italic":
		return marky.Italic{Children: children, Metadata: meta}, nil
	case "strikethrough":
		return marky.Strikethrough{Children: children, Metadata: meta}, nil
	case "subscript":
		return marky.Subscript{Children: children, Metadata: meta}, nil
	case "superscript":
		return marky.Superscript{Children: children, Metadata: meta}, nil
	case "paragraph_text":
		return marky.ParagraphText{Children: children, Metadata: meta}, nil
	default:
		return nil, fmt.Errorf("annotated type %q: %w", dto.Type, marky.ErrUnsupportedFormat)
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
