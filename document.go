package marky

// Document is a converted markdown document together with the resolved
// layout of each of its tables, in the order Tables returns them.
type Document struct {
	Nodes  []Composable
	Tables []TableLayout
}

// Tables returns every table in nodes in document order, including tables
// nested in block quotes, paragraphs and lists.
func Tables(nodes []Composable) []TableBlock {
	var out []TableBlock
	var walk func([]Composable)
	walk = func(nodes []Composable) {
		for _, n := range nodes {
			switch n := n.(type) {
			case TableBlock:
				out = append(out, n)
			case BlockQuote:
				walk(n.Children)
			case Paragraph:
				walk(n.Children)
			case ListBlock:
				for _, e := range n.Entries {
					if ln, ok := e.(ListNode); ok {
						walk([]Composable{ln.Node})
					}
				}
			}
		}
	}
	walk(nodes)
	return out
}
