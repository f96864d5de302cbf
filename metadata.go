package marky

// NodeMetadata carries the nesting counters of a stable node. It is a value
// type: every Inc method returns a new NodeMetadata and leaves the receiver
// untouched, so it can be threaded through concurrent conversions without
// synchronization.
type NodeMetadata struct {
	Level          int // Incremented on entering any container.
	QuoteLevel     int
	ListLevel      int
	ParagraphLevel int
}

// IsRootLevel reports whether the node sits directly in the document.
func (m NodeMetadata) IsRootLevel() bool { return m.Level == 0 }

// IncLevel returns m nested one level deeper in a generic container.
func (m NodeMetadata) IncLevel() NodeMetadata {
	m.Level++
	return m
}

// IncQuoteLevel returns m nested inside a block quote.
func (m NodeMetadata) IncQuoteLevel() NodeMetadata {
	m.Level++
	m.QuoteLevel++
	return m
}

// IncListLevel returns m nested inside a list.
func (m NodeMetadata) IncListLevel() NodeMetadata {
	m.Level++
	m.ListLevel++
	return m
}

// IncParagraphLevel returns m nested inside a paragraph.
func (m NodeMetadata) IncParagraphLevel() NodeMetadata {
	m.Level++
	m.ParagraphLevel++
	return m
}
