package marky

// Composable is a sealed interface representing a block-level node of the
// stable tree. The unexported marker method prevents external
// implementations.
type Composable interface {
	isComposable()
	Meta() NodeMetadata
}

// Headline is a heading with Level in [1, 6].
type Headline struct {
	Level    int
	Children []Annotated
	Metadata NodeMetadata
}

func (Headline) isComposable() {}

// Meta returns the node metadata.
func (n Headline) Meta() NodeMetadata { return n.Metadata }

// Paragraph holds bundled text content. Images never appear inside a
// Paragraph; they are split out as sibling Image nodes.
type Paragraph struct {
	Children []Composable
	Metadata NodeMetadata
}

func (Paragraph) isComposable() {}

// Meta returns the node metadata.
func (n Paragraph) Meta() NodeMetadata { return n.Metadata }

// Image is a block-level image. AltText and Title are empty when absent.
type Image struct {
	URL      string
	AltText  string
	Title    string
	Metadata NodeMetadata
}

func (Image) isComposable() {}

// Meta returns the node metadata.
func (n Image) Meta() NodeMetadata { return n.Metadata }

// Rule is a thematic break.
type Rule struct {
	Metadata NodeMetadata
}

func (Rule) isComposable() {}

// Meta returns the node metadata.
func (n Rule) Meta() NodeMetadata { return n.Metadata }

// CodeBlock is a fenced or indented code block. Language is empty when the
// block has no info string.
type CodeBlock struct {
	Content  string
	Language string
	Metadata NodeMetadata
}

func (CodeBlock) isComposable() {}

// Meta returns the node metadata.
func (n CodeBlock) Meta() NodeMetadata { return n.Metadata }

// BlockQuote holds quoted blocks.
type BlockQuote struct {
	Children []Composable
	Metadata NodeMetadata
}

func (BlockQuote) isComposable() {}

// Meta returns the node metadata.
func (n BlockQuote) Meta() NodeMetadata { return n.Metadata }

// TableBlock is a table with one header row.
type TableBlock struct {
	Head     TableRow
	Body     []TableRow
	Metadata NodeMetadata
}

func (TableBlock) isComposable() {}

// Meta returns the node metadata.
func (n TableBlock) Meta() NodeMetadata { return n.Metadata }

// Rows returns the header followed by the body rows. Row 0 is the header.
func (n TableBlock) Rows() []TableRow {
	rows := make([]TableRow, 0, len(n.Body)+1)
	rows = append(rows, n.Head)
	return append(rows, n.Body...)
}

// ListBlock is a list. Each source item contributes a ListItem followed by
// zero or more ListNode entries.
type ListBlock struct {
	Entries  []ListEntry
	Metadata NodeMetadata
}

func (ListBlock) isComposable() {}

// Meta returns the node metadata.
func (n ListBlock) Meta() NodeMetadata { return n.Metadata }

// TextNode lifts an inline node into the block tree.
type TextNode struct {
	Node     Annotated
	Metadata NodeMetadata
}

func (TextNode) isComposable() {}

// Meta returns the node metadata.
func (n TextNode) Meta() NodeMetadata { return n.Metadata }

// Interface compliance checks.
var (
	_ Composable = Headline{}
	_ Composable = Paragraph{}
	_ Composable = Image{}
	_ Composable = Rule{}
	_ Composable = CodeBlock{}
	_ Composable = BlockQuote{}
	_ Composable = TableBlock{}
	_ Composable = ListBlock{}
	_ Composable = TextNode{}
)
