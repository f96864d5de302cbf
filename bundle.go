package marky

// Bundle merges every run of two or more adjacent TextNode entries into a
// single TextNode wrapping a ParagraphText, in order. Other nodes pass
// through unchanged and end the current run. ParagraphText children of the
// merged nodes are spliced in, so groups stay flat and Bundle(Bundle(x))
// equals Bundle(x).
func Bundle(nodes []Composable, meta NodeMetadata) []Composable {
	out := make([]Composable, 0, len(nodes))
	var run []TextNode

	flush := func() {
		switch len(run) {
		case 0:
			return
		case 1:
			out = append(out, run[0])
		default:
			var children []Annotated
			for _, tn := range run {
				if pt, ok := tn.Node.(ParagraphText); ok {
					children = append(children, pt.Children...)
					continue
				}
				children = append(children, tn.Node)
			}
			out = append(out, TextNode{
				Node:     ParagraphText{Children: children, Metadata: meta},
				Metadata: meta,
			})
		}
		run = nil
	}

	for _, n := range nodes {
		if tn, ok := n.(TextNode); ok {
			run = append(run, tn)
			continue
		}
		flush()
		out = append(out, n)
	}
	flush()
	return out
}
