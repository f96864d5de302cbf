package marky

// Annotated is a sealed interface representing an inline text run.
// The unexported marker method prevents external implementations.
// Meta() returns the node's nesting counters without a type switch.
type Annotated interface {
	isAnnotated()
	Meta() NodeMetadata
}

// PlainText is an unstyled run of text.
type PlainText struct {
	Text     string
	Metadata NodeMetadata
}

func (PlainText) isAnnotated() {}

// Meta returns the node metadata.
func (n PlainText) Meta() NodeMetadata { return n.Metadata }

// Bold is strong emphasis.
type Bold struct {
	Children []Annotated
	Metadata NodeMetadata
}

func (Bold) isAnnotated() {}

// Meta returns the node metadata.
func (n Bold) Meta() NodeMetadata { return n.Metadata }

// Italic is emphasis.
type Italic struct {
	Children []Annotated
	Metadata NodeMetadata
}

func (Italic) isAnnotated() {}

// Meta returns the node metadata.
func (n Italic) Meta() NodeMetadata { return n.Metadata }

// Strikethrough is struck-out text.
type Strikethrough struct {
	Children []Annotated
	Metadata NodeMetadata
}

func (Strikethrough) isAnnotated() {}

// Meta returns the node metadata.
func (n Strikethrough) Meta() NodeMetadata { return n.Metadata }

// Link is a hyperlink. Title is empty when the source has none.
type Link struct {
	URL      string
	Title    string
	Children []Annotated
	Metadata NodeMetadata
}

func (Link) isAnnotated() {}

// Meta returns the node metadata.
func (n Link) Meta() NodeMetadata { return n.Metadata }

// Subscript is text lowered below the baseline.
type Subscript struct {
	Children []Annotated
	Metadata NodeMetadata
}

func (Subscript) isAnnotated() {}

// Meta returns the node metadata.
func (n Subscript) Meta() NodeMetadata { return n.Metadata }

// Superscript is text raised above the baseline.
type Superscript struct {
	Children []Annotated
	Metadata NodeMetadata
}

func (Superscript) isAnnotated() {}

// Meta returns the node metadata.
func (n Superscript) Meta() NodeMetadata { return n.Metadata }

// InlineCode is a code span.
type InlineCode struct {
	Code     string
	Metadata NodeMetadata
}

func (InlineCode) isAnnotated() {}

// Meta returns the node metadata.
func (n InlineCode) Meta() NodeMetadata { return n.Metadata }

// ParagraphText groups consecutive inline runs into one unit. Only Bundle
// creates it.
type ParagraphText struct {
	Children []Annotated
	Metadata NodeMetadata
}

func (ParagraphText) isAnnotated() {}

// Meta returns the node metadata.
func (n ParagraphText) Meta() NodeMetadata { return n.Metadata }

// AnnotatedChildren returns the nested runs of n, or nil for leaf kinds.
func AnnotatedChildren(n Annotated) []Annotated {
	switch n := n.(type) {
	case Bold:
		return n.Children
	case Italic:
		return n.Children
	case Strikethrough:
		return n.Children
	case Link:
		return n.Children
	case Subscript:
		return n.Children
	case Superscript:
		return n.Children
	case ParagraphText:
		return n.Children
	default:
		return nil
	}
}

// PlainString flattens inline runs into their unstyled text.
func PlainString(nodes []Annotated) string {
	var buf []byte
	var walk func([]Annotated)
	walk = func(nodes []Annotated) {
		for _, n := range nodes {
			switch n := n.(type) {
			case PlainText:
				buf = append(buf, n.Text...)
			case InlineCode:
				buf = append(buf, n.Code...)
			default:
				walk(AnnotatedChildren(n))
			}
		}
	}
	walk(nodes)
	return string(buf)
}

// Interface compliance checks.
var (
	_ Annotated = PlainText{}
	_ Annotated = Bold{}
	_ Annotated = Italic{}
	_ Annotated = Strikethrough{}
	_ Annotated = Link{}
	_ Annotated = Subscript{}
	_ Annotated = Superscript{}
	_ Annotated = InlineCode{}
	_ Annotated = ParagraphText{}
)
