package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Kinds of the inline nodes added by Script.
var (
	KindSubscript   = ast.NewNodeKind("Subscript")
	KindSuperscript = ast.NewNodeKind("Superscript")
)

// Subscript is an inline node for ~text~.
type Subscript struct {
	ast.BaseInline
}

// Kind implements ast.Node.
func (n *Subscript) Kind() ast.NodeKind { return KindSubscript }

// Dump implements ast.Node.
func (n *Subscript) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// Superscript is an inline node for ^text^.
type Superscript struct {
	ast.BaseInline
}

// Kind implements ast.Node.
func (n *Superscript) Kind() ast.NodeKind { return KindSuperscript }

// Dump implements ast.Node.
func (n *Superscript) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// scriptDelimiterProcessor resolves one delimiter character. A single tilde
// pair makes a subscript and a double pair a strikethrough, the same way
// emphasis levels are told apart by how many delimiters a match consumes.
type scriptDelimiterProcessor struct {
	char byte
}

func (p *scriptDelimiterProcessor) IsDelimiter(b byte) bool {
	return b == p.char
}

func (p *scriptDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *scriptDelimiterProcessor) OnMatch(consumes int) ast.Node {
	if p.char == '^' {
		return &Superscript{}
	}
	if consumes >= 2 {
		return extast.NewStrikethrough()
	}
	return &Subscript{}
}

var (
	tildeProcessor = &scriptDelimiterProcessor{char: '~'}
	caretProcessor = &scriptDelimiterProcessor{char: '^'}
)

type scriptParser struct{}

func (s *scriptParser) Trigger() []byte {
	return []byte{'~', '^'}
}

func (s *scriptParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	if len(line) == 0 {
		return nil
	}
	processor := tildeProcessor
	if line[0] == '^' {
		processor = caretProcessor
	}
	node := parser.ScanDelimiter(line, before, 1, processor)
	if node == nil || node.OriginalLength > 2 {
		return nil
	}
	// A single delimiter only opens when its closer follows on the same
	// line with no whitespace in between, so ~5 min stays plain text.
	if node.OriginalLength == 1 && node.CanOpen && !closesWithoutSpace(line[1:], line[0]) {
		node.CanOpen = false
	}
	if !node.CanOpen && !node.CanClose {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

func closesWithoutSpace(rest []byte, char byte) bool {
	for _, b := range rest {
		switch {
		case b == char:
			return true
		case util.IsSpace(b):
			return false
		}
	}
	return false
}

func (s *scriptParser) CloseBlock(parent ast.Node, pc parser.Context) {}

type script struct{}

// Script is a goldmark extension parsing ~~strikethrough~~, ~subscript~
// and ^superscript^. It replaces extension.Strikethrough, which would
// otherwise claim single tildes.
var Script goldmark.Extender = &script{}

func (e *script) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&scriptParser{}, 500),
	))
}
